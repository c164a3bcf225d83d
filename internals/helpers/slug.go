package helper

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const defaultSlugLen = 100

// Slugify folds free text into [a-z0-9-] with diacritics stripped
// ("Introdução à LGPD" → "introducao-a-lgpd"), capped at maxLen runes
// (100 when <= 0). Empty results become "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = defaultSlugLen
	}

	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(strings.ToLower(s)) {
		switch {
		case unicode.Is(unicode.Mn, r):
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}

	out := b.String()
	if len(out) > maxLen {
		out = strings.TrimRight(out[:maxLen], "-")
	}
	if out == "" {
		return "item"
	}
	return out
}

// EnsureUniqueSlugCI returns base, or base-N with the lowest free N >= 2,
// comparing case-insensitively against table.column. scope may narrow the
// lookup (soft-delete filters, parent ids).
func EnsureUniqueSlugCI(
	ctx context.Context,
	db *gorm.DB,
	table, column, base string,
	scope func(*gorm.DB) *gorm.DB,
	maxLen int,
) (string, error) {
	if maxLen <= 0 {
		maxLen = defaultSlugLen
	}
	base = strings.ToLower(base)

	q := db.WithContext(ctx).Table(table)
	if scope != nil {
		q = scope(q)
	}
	var taken []string
	err := q.Where(fmt.Sprintf("(LOWER(%s) = ? OR LOWER(%s) LIKE ?)", column, column), base, base+"-%").
		Pluck(column, &taken).Error
	if err != nil {
		return "", err
	}
	return nextFreeSlug(base, taken, maxLen), nil
}

func nextFreeSlug(base string, taken []string, maxLen int) string {
	used := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		used[strings.ToLower(t)] = struct{}{}
	}
	if _, ok := used[base]; !ok {
		return base
	}
	for n := 2; ; n++ {
		suffix := "-" + strconv.Itoa(n)
		stem := base
		if len(stem)+len(suffix) > maxLen {
			stem = strings.TrimRight(stem[:maxLen-len(suffix)], "-")
		}
		if _, ok := used[stem+suffix]; !ok {
			return stem + suffix
		}
	}
}
