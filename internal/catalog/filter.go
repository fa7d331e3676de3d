package catalog

import "strings"

type FilterOptions struct {
	Colors    []string `json:"colors"`
	Sizes     []string `json:"sizes"`
	FreeWords string   `json:"free_words"`
}

func matchesAny(value string, wanted []string) bool {
	for _, w := range wanted {
		if strings.EqualFold(strings.TrimSpace(w), value) {
			return true
		}
	}
	return false
}

// Filter keeps the products matching every non-empty option. Colors and sizes
// compare case-insensitively against the defaulted values; every free word
// must appear in the name or id.
func Filter(products []Product, opt FilterOptions) []Product {
	out := []Product{}
	for _, p := range products {
		if len(opt.Colors) > 0 && !matchesAny(p.ColorOrDefault(), opt.Colors) {
			continue
		}
		if len(opt.Sizes) > 0 && !matchesAny(p.SizeOrDefault(), opt.Sizes) {
			continue
		}
		if opt.FreeWords != "" {
			ok := true
			hay := strings.ToLower(p.Name + " " + string(p.ID))
			for _, k := range strings.Fields(opt.FreeWords) {
				if !strings.Contains(hay, strings.ToLower(k)) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
