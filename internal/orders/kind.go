package orders

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported orders.
type Kind int

const (
	KindDatePrice Kind = iota + 1
	KindGoldAverage
	KindHighestAmplitude
	KindLowestPrice
	KindSortByDifference
	KindLowestHighest
	KindWeekGraph
)

var kindNames = map[Kind]string{
	KindDatePrice:        "date-price",
	KindGoldAverage:      "gold-average",
	KindHighestAmplitude: "highest-amplitude",
	KindLowestPrice:      "lowest-price",
	KindSortByDifference: "sort-by-difference",
	KindLowestHighest:    "lowest-highest",
	KindWeekGraph:        "week-graph",
}

// Kinds lists every kind in the order batches run them.
func Kinds() []Kind {
	return []Kind{
		KindDatePrice,
		KindGoldAverage,
		KindHighestAmplitude,
		KindLowestPrice,
		KindSortByDifference,
		KindLowestHighest,
		KindWeekGraph,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a flag/route name such as "gold-average" to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown order %q", s)
}

// Separator is the character that splits this order's argument string.
func (k Kind) Separator() string {
	if k == KindWeekGraph {
		return ";"
	}
	return ","
}

// SplitArgs splits a raw argument string ("USD,2017-01-02") into fields.
// An empty string yields no arguments.
func (k Kind) SplitArgs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, k.Separator())
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// New builds the order of the given kind. The returned order is never nil
// for a known kind; check its Err method for argument problems.
func New(kind Kind, args []string, env Env) (Order, error) {
	switch kind {
	case KindDatePrice:
		return NewDatePrice(args, env), nil
	case KindGoldAverage:
		return NewGoldAverage(args, env), nil
	case KindHighestAmplitude:
		return NewHighestAmplitude(args, env), nil
	case KindLowestPrice:
		return NewLowestPrice(args, env), nil
	case KindSortByDifference:
		return NewSortByDifference(args, env), nil
	case KindLowestHighest:
		return NewLowestHighest(args, env), nil
	case KindWeekGraph:
		return NewWeekGraph(args, env), nil
	default:
		return nil, fmt.Errorf("unknown order kind %d", int(kind))
	}
}
