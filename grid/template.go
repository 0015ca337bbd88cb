package grid

import (
	"strconv"
	"strings"

	"github.com/benoitkugler/layoutng/logger"
)

// ParseTemplate parses a grid-template-rows or grid-template-columns value
// into an axis track list. It understands lengths in px, percentages, fr
// flex factors, the auto / min-content / max-content keywords, minmax() and
// repeat() with a positive count or auto-fill / auto-fit.
//
// Parsing is forgiving: the first unparsable token stops the scan and the
// tracks read so far are kept. An empty result defaults to one auto track.
func ParseTemplate(template string, gap Fl) AxisTracks {
	var (
		tracks     []Track
		autoRepeat *Repeat
	)

	tokens := splitTopLevel(template)
	for i, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "repeat(") && strings.HasSuffix(tok, ")"):
			count, kind, sizes, ok := parseRepeat(tok[len("repeat(") : len(tok)-1])
			if !ok {
				logTemplateStop(template, tokens[i:])
				return finishTemplate(tracks, gap, autoRepeat)
			}
			if kind == RepeatCount {
				for j := 0; j < count; j++ {
					for _, size := range sizes {
						tracks = append(tracks, Track{Size: size})
					}
				}
			} else {
				autoRepeat = &Repeat{Kind: kind, Tracks: sizes}
			}
		default:
			size, ok := parseTrackSize(tok)
			if !ok {
				logTemplateStop(template, tokens[i:])
				return finishTemplate(tracks, gap, autoRepeat)
			}
			tracks = append(tracks, Track{Size: size})
		}
	}

	return finishTemplate(tracks, gap, autoRepeat)
}

func logTemplateStop(template string, rest []string) {
	logger.WarningLogger.Printf("grid template %q: stopping at %q", template, strings.Join(rest, " "))
}

func finishTemplate(tracks []Track, gap Fl, autoRepeat *Repeat) AxisTracks {
	if len(tracks) == 0 && autoRepeat == nil {
		tracks = []Track{{Size: Breadth(Auto())}}
	}
	return AxisTracks{Tracks: tracks, Gap: gap, AutoRepeat: autoRepeat}
}

// splitTopLevel cuts the template on whitespace, keeping parenthesized
// function arguments together.
func splitTopLevel(s string) []string {
	var (
		out   []string
		start = -1
		depth = 0
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			if start != -1 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		out = append(out, s[start:])
	}
	return out
}

// parseRepeat parses the arguments of repeat(). The first argument is a
// positive integer count or the auto-fill / auto-fit keyword, the rest is
// a track list.
func parseRepeat(args string) (count int, kind RepeatKind, sizes []TrackSize, ok bool) {
	comma := topLevelComma(args)
	if comma == -1 {
		return 0, 0, nil, false
	}
	first := strings.TrimSpace(args[:comma])
	rest := args[comma+1:]

	switch strings.ToLower(first) {
	case "auto-fill":
		kind = RepeatAutoFill
	case "auto-fit":
		kind = RepeatAutoFit
	default:
		n, err := strconv.Atoi(first)
		if err != nil || n <= 0 {
			return 0, 0, nil, false
		}
		count, kind = n, RepeatCount
	}

	for _, tok := range splitTopLevel(rest) {
		size, sizeOk := parseTrackSize(tok)
		if !sizeOk {
			return 0, 0, nil, false
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return 0, 0, nil, false
	}
	return count, kind, sizes, true
}

// topLevelComma returns the index of the first comma outside parentheses.
func topLevelComma(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseTrackSize(tok string) (TrackSize, bool) {
	tok = strings.TrimSpace(tok)
	if strings.HasPrefix(tok, "minmax(") && strings.HasSuffix(tok, ")") {
		args := tok[len("minmax(") : len(tok)-1]
		comma := topLevelComma(args)
		if comma == -1 {
			return TrackSize{}, false
		}
		min, okMin := parseBreadth(strings.TrimSpace(args[:comma]))
		max, okMax := parseBreadth(strings.TrimSpace(args[comma+1:]))
		if !okMin || !okMax {
			return TrackSize{}, false
		}
		return MinMax(min, max), true
	}
	breadth, ok := parseBreadth(tok)
	if !ok {
		return TrackSize{}, false
	}
	return Breadth(breadth), true
}

func parseBreadth(tok string) (TrackBreadth, bool) {
	switch strings.ToLower(tok) {
	case "auto":
		return Auto(), true
	case "min-content":
		return TrackBreadth{Kind: BreadthMinContent}, true
	case "max-content":
		return TrackBreadth{Kind: BreadthMaxContent}, true
	case "0":
		return Length(0), true
	}
	parseValue := func(suffix string) (Fl, bool) {
		v, err := strconv.ParseFloat(strings.TrimSuffix(tok, suffix), 32)
		return Fl(v), err == nil
	}
	switch {
	case strings.HasSuffix(tok, "px"):
		if v, ok := parseValue("px"); ok {
			return Length(v), true
		}
	case strings.HasSuffix(tok, "fr"):
		if v, ok := parseValue("fr"); ok {
			return Flex(v), true
		}
	case strings.HasSuffix(tok, "%"):
		if v, ok := parseValue("%"); ok {
			return Percentage(v / 100), true
		}
	}
	return TrackBreadth{}, false
}
