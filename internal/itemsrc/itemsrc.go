package itemsrc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultLimit caps how many items are kept from a file.
const DefaultLimit = 500

// Read returns at most limit items from the end of the file at path. Each
// non-blank line is one item; lines starting with '#' are comments. A
// missing file yields no items and no error.
func Read(path string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open items: %w", err)
	}
	defer file.Close()

	ring := make([]string, limit)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		item := strings.TrimSpace(scanner.Text())
		if item == "" || strings.HasPrefix(item, "#") {
			continue
		}
		ring[idx] = item
		idx = (idx + 1) % limit
		if count < limit {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	items := make([]string, count)
	if count == limit {
		for i := 0; i < count; i++ {
			items[i] = ring[(idx+i)%limit]
		}
	} else {
		copy(items, ring[:count])
	}
	return items, nil
}
