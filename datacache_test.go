package vizchat

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/Desarso/vizchat/models"
)

func TestEstimateTokenCount(t *testing.T) {
	if got := Estimate_Token_Count(""); got != 0 {
		t.Errorf("empty payload = %d tokens", got)
	}
	if got := Estimate_Token_Count(strings.Repeat("x", 9)); got != 3 {
		t.Errorf("9 chars = %d tokens, want 3", got)
	}
	if got := Estimate_Token_Count(strings.Repeat("x", 10)); got != 3 {
		t.Errorf("10 chars = %d tokens, want 3 (integer division)", got)
	}
}

func TestAttachSmallResultInlined(t *testing.T) {
	cache := NewDataCache()
	result := map[string]interface{}{"values": []interface{}{1.0, 2.0, 3.0}}

	messages := cache.Attach_Function_Message(nil, "generate_business_data", result)
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if cache.Len() != 0 {
		t.Errorf("small result should not be cached, cache has %d entries", cache.Len())
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(messages[0].Content.AsText()), &decoded); err != nil {
		t.Fatalf("inlined content is not JSON: %v", err)
	}
	if !reflect.DeepEqual(decoded, result) {
		t.Errorf("inlined content does not round-trip: %v", decoded)
	}
}

func TestAttachLargeResultCached(t *testing.T) {
	cache := NewDataCache()
	// 50000 samples encode far beyond the inline ceiling.
	samples := make([]interface{}, 50000)
	for i := range samples {
		samples[i] = 123.456
	}
	result := map[string]interface{}{"data": samples, "type": "statistical"}

	messages := cache.Attach_Function_Message(nil, "generate_statistical_data", result)
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	var stub map[string]string
	if err := json.Unmarshal([]byte(messages[0].Content.AsText()), &stub); err != nil {
		t.Fatalf("stub is not JSON: %v", err)
	}
	key, ok := stub["data_id"]
	if !ok || len(stub) != 1 {
		t.Fatalf("stub should carry only data_id, got %v", stub)
	}
	if strings.Contains(key, "-") {
		t.Errorf("cache key %q should not contain dashes", key)
	}

	stored, found := cache.Get(key)
	if !found {
		t.Fatal("cached result not retrievable by key")
	}
	if !reflect.DeepEqual(stored, result) {
		t.Error("cached value does not match original result")
	}
}

func TestInlineThresholdBoundary(t *testing.T) {
	cache := NewDataCache()

	// Encoded payload is {"pad":"..."} so key and quotes add 10 chars.
	build := func(payloadLen int) map[string]interface{} {
		return map[string]interface{}{"pad": strings.Repeat("a", payloadLen-10)}
	}

	// Just under the ceiling: 23999/3 = 7999 < 8000, inline.
	under := cache.Attach_Function_Message(nil, "generate_business_data", build(23999))
	if strings.Contains(under[0].Content.AsText(), "data_id") {
		t.Error("payload under threshold should be inlined")
	}

	// At the ceiling: 24000/3 = 8000, cached.
	at := cache.Attach_Function_Message(nil, "generate_business_data", build(24000))
	if !strings.Contains(at[0].Content.AsText(), "data_id") {
		t.Error("payload at threshold should be cached")
	}
}

func TestCacheKeysUnique(t *testing.T) {
	cache := NewDataCache()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := cache.Put(map[string]interface{}{"i": i})
		if seen[key] {
			t.Fatalf("duplicate cache key %q", key)
		}
		seen[key] = true
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	cache := NewDataCache()
	var firstKey string
	for i := 0; i < data_cache_size+1; i++ {
		key := cache.Put(map[string]interface{}{"i": i})
		if i == 0 {
			firstKey = key
		}
	}
	if _, found := cache.Get(firstKey); found {
		t.Error("oldest entry should be evicted once capacity is exceeded")
	}
	if cache.Len() != data_cache_size {
		t.Errorf("cache size = %d, want %d", cache.Len(), data_cache_size)
	}
}

func TestAttachPreservesFragment(t *testing.T) {
	cache := NewDataCache()
	existing := []models.Chat_Message{{Role: models.Role_Function, Name: "earlier", Content: models.Text_Content("{}")}}
	messages := cache.Attach_Function_Message(existing, "generate_business_data", map[string]interface{}{"values": []interface{}{1.0}})
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Name != "earlier" {
		t.Error("existing fragment messages should be preserved in order")
	}
}
