package recommend

import "strings"

// Capability is a canonical plan capability recognised in free-text feature strings.
type Capability string

const (
	CapabilityFamily       Capability = "family"
	CapabilityReliability  Capability = "reliability"
	CapabilityNoCommitment Capability = "no_commitment"
	CapabilityLatestTech   Capability = "latest_tech"
	CapabilitySmartMeter   Capability = "smart_meter"
	CapabilityTimeOfUse    Capability = "time_of_use"
	CapabilityStreaming    Capability = "streaming"
	CapabilityUnlimited    Capability = "unlimited"
)

// KeywordTable maps a capability to the substrings that signal it. Matching is
// case-insensitive substring search over each feature string.
type KeywordTable map[Capability][]string

// DefaultKeywordTable returns the built-in keyword lists.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		CapabilityFamily:       {"family", "multi-line", "multi line", "lines", "משפחה"},
		CapabilityReliability:  {"reliable", "reliability", "stable", "uptime", "guaranteed", "24/7"},
		CapabilityNoCommitment: {"no commitment", "without commitment", "no contract", "cancel anytime", "ללא התחייבות"},
		CapabilityLatestTech:   {"5G", "fiber", "4K", "WiFi6", "WiFi 6", "smart"},
		CapabilitySmartMeter:   {"smart meter"},
		CapabilityTimeOfUse:    {"time of use", "night", "off-peak", "23:00"},
		CapabilityStreaming:    {"4k", "streaming", "netflix", "unlimited"},
		CapabilityUnlimited:    {"unlimited"},
	}
}

// Matches reports whether any feature contains any keyword of the capability.
func (k KeywordTable) Matches(features []string, c Capability) bool {
	return len(k.Matched(features, c)) > 0
}

// Matched returns the distinct keywords of the capability found in features, in table order.
func (k KeywordTable) Matched(features []string, c Capability) []string {
	keywords := k[c]
	if len(keywords) == 0 || len(features) == 0 {
		return nil
	}
	lowered := make([]string, len(features))
	for i, f := range features {
		lowered[i] = strings.ToLower(f)
	}
	var out []string
	for _, kw := range keywords {
		needle := strings.ToLower(strings.TrimSpace(kw))
		if needle == "" {
			continue
		}
		for _, f := range lowered {
			if strings.Contains(f, needle) {
				out = append(out, kw)
				break
			}
		}
	}
	return out
}

func (k KeywordTable) clone() KeywordTable {
	out := make(KeywordTable, len(k))
	for c, kws := range k {
		out[c] = append([]string(nil), kws...)
	}
	return out
}
