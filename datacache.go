package vizchat

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Desarso/vizchat/models"
)

var cache_logger = log.New(os.Stdout, "[DATACACHE] ", log.LstdFlags)

// Max_Inline_Tokens is the cost ceiling for inlining a tool result into the
// conversation, roughly 24 KB of JSON. Results above it go to the data cache
// and only a stub referencing the cache key is sent to the model.
const Max_Inline_Tokens = 8000

const (
	data_cache_size = 256
	data_cache_ttl  = time.Hour
)

// Estimate_Token_Count is a coarse token estimator for ASCII JSON. Gemini
// tokens run three to four characters each, so dividing by three
// overestimates and stays on the safe side.
func Estimate_Token_Count(payload string) int {
	return len(payload) / 3
}

// Data_Cache holds oversized tool results keyed by opaque id so a later turn
// or tool call can reference a dataset without re-transmitting it. Entries
// expire after an hour and the least recently used entry is evicted once the
// cache is full.
type Data_Cache struct {
	entries *expirable.LRU[string, map[string]interface{}]
}

func NewDataCache() *Data_Cache {
	return &Data_Cache{
		entries: expirable.NewLRU[string, map[string]interface{}](data_cache_size, nil, data_cache_ttl),
	}
}

// Put stores a result under a fresh unique key and returns the key.
func (c *Data_Cache) Put(result map[string]interface{}) string {
	key := strings.ReplaceAll(uuid.New().String(), "-", "")
	c.entries.Add(key, result)
	return key
}

// Get returns the result stored under key, if it has not expired or been
// evicted.
func (c *Data_Cache) Get(key string) (map[string]interface{}, bool) {
	return c.entries.Get(key)
}

func (c *Data_Cache) Len() int {
	return c.entries.Len()
}

// Default_Data_Cache is the process-wide cache used when no explicit cache
// is wired in.
var Default_Data_Cache = NewDataCache()

// Attach_Function_Message appends a function-role message carrying the
// output of a data generation call. Small results are inlined as compact
// JSON; large ones are cached and replaced with a {"data_id": key} stub so
// the follow-up turn does not blow the context budget.
func (c *Data_Cache) Attach_Function_Message(fragment []models.Chat_Message, fnName string, result map[string]interface{}) []models.Chat_Message {
	payload, err := json.Marshal(result)
	if err != nil {
		cache_logger.Printf("failed to encode result of %s: %v", fnName, err)
		return fragment
	}

	content := string(payload)
	if Estimate_Token_Count(content) >= Max_Inline_Tokens {
		key := c.Put(result)
		cache_logger.Printf("result of %s too large to inline (%d units), cached as %s",
			fnName, Estimate_Token_Count(content), key)
		stub, _ := json.Marshal(map[string]string{"data_id": key})
		content = string(stub)
	}

	return append(fragment, models.Chat_Message{
		Role:    models.Role_Function,
		Name:    fnName,
		Content: models.Text_Content(content),
	})
}
