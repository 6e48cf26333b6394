// Package origin supplies the static, read-only post collection. It is
// loaded once per process and only ever consumed as input to the feed's
// combine step; nothing in the application mutates or re-fetches it.
package origin

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"inkwell/app/models"
)

//go:embed posts.json
var seedFS embed.FS

var (
	once        sync.Once
	seededPosts []models.Post
)

// Default returns the embedded origin posts. The embedded dataset ships with
// the binary, so a parse failure is a build defect and panics at first use.
func Default() []models.Post {
	once.Do(func() {
		data, err := seedFS.ReadFile("posts.json")
		if err != nil {
			panic(fmt.Sprintf("embedded origin posts missing: %v", err))
		}
		seededPosts, err = decode(data)
		if err != nil {
			panic(fmt.Sprintf("embedded origin posts invalid: %v", err))
		}
	})
	return seededPosts
}

// LoadFile reads an origin collection from an external JSON file, for
// deployments that supply their own seed dataset.
func LoadFile(path string) ([]models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read origin posts: %w", err)
	}
	posts, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse origin posts %s: %w", path, err)
	}
	return posts, nil
}

func decode(data []byte) ([]models.Post, error) {
	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Source = models.SourceOrigin
	}
	return posts, nil
}
