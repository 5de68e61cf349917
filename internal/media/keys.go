package media

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewKey builds a unique storage key such as "avatars/2025/06/<uuid>.webp".
func NewKey(dir, ext string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("%s/%04d/%02d/%s%s", dir, now.Year(), int(now.Month()), uuid.NewString(), ext)
}
