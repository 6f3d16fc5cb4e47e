package bot

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"
)

// defaultNamePool is the built-in opponent name list.
var defaultNamePool = []string{
	"John", "William", "James", "George", "Charles", "Robert", "Joseph", "Frank", "Edward", "Thomas",
	"Henry", "Walter", "Harry", "Willie", "Arthur", "Albert", "Clarence", "Fred", "Harold", "Paul",
	"Raymond", "Richard", "Roy", "Joe", "Louis", "Carl", "Ralph", "Earl", "Jack", "Ernest",
	"David", "Samuel", "Howard", "Charlie", "Francis", "Herbert", "Lawrence", "Theodore", "Alfred", "Andrew",
	"Elmer", "Sam", "Eugene", "Leo", "Michael", "Lee", "Herman", "Anthony", "Daniel", "Leonard",
	"Mary", "Helen", "Margaret", "Anna", "Ruth", "Elizabeth", "Dorothy", "Marie", "Florence", "Mildred",
	"Alice", "Ethel", "Lillian", "Gladys", "Edna", "Frances", "Rose", "Annie", "Grace", "Bertha",
	"Emma", "Bessie", "Clara", "Hazel", "Irene", "Gertrude", "Louise", "Catherine", "Martha", "Mabel",
	"Pearl", "Edith", "Esther", "Minnie", "Myrtle", "Ida", "Josephine", "Evelyn", "Elsie", "Eva",
	"Thelma", "Ruby", "Agnes", "Sarah", "Viola", "Nellie", "Beatrice", "Julia", "Laura", "Lillie",
}

var (
	namePool = defaultNamePool
	loadOnce sync.Once
	loadErr  error
)

// LoadNamePool replaces the built-in opponent names with a JSON string array
// from the given path. Loaded once per process.
func LoadNamePool(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read name pool: %w", err)
			return
		}
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal name pool: %w", err)
			return
		}
		if len(names) > 0 {
			namePool = names
		}
	})
	return loadErr
}

// DrawNames picks n distinct opponent names using the supplied generator.
func DrawNames(rng *rand.Rand, n int) []string {
	pool := append([]string(nil), namePool...)
	if n > len(pool) {
		n = len(pool)
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := rng.Intn(len(pool))
		names = append(names, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return names
}
