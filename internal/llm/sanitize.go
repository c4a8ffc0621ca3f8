package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
)

// NormalizeAndSanitizeJSON
// - Renames known synonyms (Author -> Author(s), Year -> Year Published)
// - Drops null/empty optionals
// - Coerces numeric years and findings to strings
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to the schema keys
	renamed("Author", "Author(s)")
	renamed("Authors", "Author(s)")
	renamed("Year", "Year Published")
	renamed("Publication Year", "Year Published")
	renamed("Citation", "BibTeX Citation")
	renamed("Takeaways", "Key Takeaways")
	renamed("Findings", "Key Findings")

	// 2) coerce the year to a string; models often emit a bare number
	if v, ok := m["Year Published"]; ok {
		switch t := v.(type) {
		case float64:
			m["Year Published"] = fmt.Sprintf("%.0f", t)
		case string:
			m["Year Published"] = strings.TrimSpace(t)
		case nil:
			delete(m, "Year Published")
			dropped = append(dropped, "Year Published(null)")
		default:
			delete(m, "Year Published")
			dropped = append(dropped, "Year Published(type)")
		}
	}

	// 3) Key Findings must be a string->string object
	if v, ok := m["Key Findings"]; ok {
		switch t := v.(type) {
		case map[string]any:
			clean := make(map[string]any, len(t))
			for k, fv := range t {
				switch s := fv.(type) {
				case string:
					clean[k] = strings.TrimSpace(s)
				case float64:
					clean[k] = fmt.Sprintf("%g", s)
				case bool:
					clean[k] = fmt.Sprintf("%t", s)
				default:
					dropped = append(dropped, "Key Findings."+k+"(type)")
				}
			}
			m["Key Findings"] = clean
		case nil:
			delete(m, "Key Findings")
			dropped = append(dropped, "Key Findings(null)")
		default:
			delete(m, "Key Findings")
			dropped = append(dropped, "Key Findings(type)")
		}
	}

	// 4) Categories must be an array of strings; accept a comma list
	if v, ok := m["Categories"]; ok {
		switch t := v.(type) {
		case []any:
			var cats []any
			for _, c := range t {
				if s, ok := c.(string); ok && strings.TrimSpace(s) != "" {
					cats = append(cats, strings.TrimSpace(s))
				}
			}
			if len(cats) == 0 {
				delete(m, "Categories")
				dropped = append(dropped, "Categories(empty)")
			} else {
				m["Categories"] = cats
			}
		case string:
			var cats []any
			for _, s := range strings.Split(t, ",") {
				if s = strings.TrimSpace(s); s != "" {
					cats = append(cats, s)
				}
			}
			if len(cats) == 0 {
				delete(m, "Categories")
				dropped = append(dropped, "Categories(empty)")
			} else {
				m["Categories"] = cats
			}
		default:
			delete(m, "Categories")
			dropped = append(dropped, "Categories(type)")
		}
	}

	// 5) normalize Prediction Model to yes/no
	if v, ok := m["Prediction Model"]; ok {
		switch t := v.(type) {
		case bool:
			if t {
				m["Prediction Model"] = "yes"
			} else {
				m["Prediction Model"] = "no"
			}
		case string:
			s := strings.ToLower(strings.TrimSpace(t))
			switch s {
			case "yes", "true", "y":
				m["Prediction Model"] = "yes"
			case "no", "false", "n", "none":
				m["Prediction Model"] = "no"
			default:
				delete(m, "Prediction Model")
				dropped = append(dropped, "Prediction Model(value)")
			}
		default:
			delete(m, "Prediction Model")
			dropped = append(dropped, "Prediction Model(type)")
		}
	}

	// 6) remove unknown keys (everything not in the schema set below)
	allowed := map[string]struct{}{
		"Title": {}, "Author(s)": {}, "Year Published": {}, "Journal": {},
		"BibTeX Citation": {}, "Type": {}, "Categories": {}, "Sample Size": {},
		"Method": {}, "Key Findings": {}, "Prediction Model": {}, "Key Takeaways": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	// 7) trim the plain string fields; drop optionals that trim to nothing
	trimKeys := []string{
		"Title", "Author(s)", "Journal", "BibTeX Citation", "Type",
		"Sample Size", "Method", "Key Takeaways",
	}
	required := map[string]struct{}{"Title": {}, "Author(s)": {}}
	for _, k := range trimKeys {
		v, ok := m[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") {
				if _, req := required[k]; !req {
					delete(m, k)
					dropped = append(dropped, k+"(empty)")
					continue
				}
			}
			m[k] = s
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		default:
			if _, req := required[k]; !req {
				delete(m, k)
				dropped = append(dropped, k+"(type)")
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.summary.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}
