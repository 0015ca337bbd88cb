package grid

import (
	"math"

	"github.com/benoitkugler/layoutng/utils"
)

var infinity = Fl(math.Inf(1))

// sizingParams are the inputs for sizing the tracks of one axis.
type sizingParams struct {
	axisTracks     AxisTracks
	availableSize  Fl
	items          []Item
	placements     []Area
	axis           Axis
	distributeAuto bool // spread leftover space on auto tracks
}

// expandAutoRepeat expands an auto-fill / auto-fit repeat pattern into as
// many repetitions as fit in the available size, at least one.
func expandAutoRepeat(params sizingParams) []Track {
	expanded := append([]Track(nil), params.axisTracks.Tracks...)

	repeat := params.axisTracks.AutoRepeat
	if repeat == nil || repeat.Kind == RepeatCount {
		return expanded
	}

	var minRepeatSize Fl
	for _, size := range repeat.Tracks {
		switch min := size.MinBreadth(); min.Kind {
		case BreadthLength:
			minRepeatSize += min.Value
		case BreadthPercentage:
			minRepeatSize += min.Value * params.availableSize
		}
	}

	// available = n*minSize + (n-1)*gap, hence n = (available+gap) / (minSize+gap)
	gap := params.axisTracks.Gap
	repetitions := 1
	if minRepeatSize > 0 {
		repetitions = utils.MaxInt(1, int(utils.Floor((params.availableSize+gap)/(minRepeatSize+gap))))
	}

	for i := 0; i < repetitions; i++ {
		for _, size := range repeat.Tracks {
			expanded = append(expanded, Track{Size: size})
		}
	}
	return expanded
}

// addImplicitTracks appends auto tracks up to the last line used by the
// placements.
func addImplicitTracks(tracks []Track, placements []Area, axis Axis) []Track {
	if len(placements) == 0 {
		return tracks
	}
	maxLine := 1
	for _, area := range placements {
		end := area.RowEnd
		if axis == AxisColumn {
			end = area.ColEnd
		}
		if end > maxLine {
			maxLine = end
		}
	}
	for len(tracks) < maxLine-1 {
		tracks = append(tracks, Track{Size: Breadth(Auto()), Implicit: true})
	}
	return tracks
}

func trackHasItems(trackIdx int, placements []Area, axis Axis) bool {
	line := trackIdx + 1
	for _, area := range placements {
		start, end := area.RowStart, area.RowEnd
		if axis == AxisColumn {
			start, end = area.ColStart, area.ColEnd
		}
		if start <= line && end > line {
			return true
		}
	}
	return false
}

// collapseAutoFit removes empty tracks created by an auto-fit repetition.
// Implicit tracks and occupied tracks are kept; an all-empty grid keeps a
// single auto track.
func collapseAutoFit(tracks []Track, placements []Area, axis Axis, wasAutoFit bool) []Track {
	if !wasAutoFit {
		return tracks
	}
	collapsed := tracks[:0:0]
	for idx, track := range tracks {
		if track.Implicit || trackHasItems(idx, placements, axis) {
			collapsed = append(collapsed, track)
		}
	}
	if len(collapsed) == 0 {
		collapsed = []Track{{Size: Breadth(Auto())}}
	}
	return collapsed
}

// contentSize returns the largest content size, along the given axis, of
// the items occupying the track, divided by their span.
func contentSize(items []Item, placements []Area, trackIdx int, axis Axis) Fl {
	line := trackIdx + 1
	var max Fl
	for i, area := range placements {
		if i >= len(items) {
			break
		}
		start, end := area.RowStart, area.RowEnd
		size := items[i].MaxContentHeight
		if axis == AxisColumn {
			start, end = area.ColStart, area.ColEnd
			size = items[i].MaxContentWidth
		}
		if start <= line && end > line {
			if span := end - start; span > 1 {
				size /= Fl(span)
			}
			if size > max {
				max = size
			}
		}
	}
	return max
}

// resolveNonFlexTracks fills base sizes and growth limits for every track
// that is not flex-sized, consuming the remaining space, and returns the
// indices of flex tracks (with factors) and of auto tracks.
func resolveNonFlexTracks(resolved *ResolvedTrackSizes, tracks []Track, remaining *Fl,
	params sizingParams, availableForTracks Fl,
) (flexTracks []flexTrack, autoTracks []int) {
	for idx, track := range tracks {
		switch track.Size.Kind {
		case SizeBreadth:
			breadth := track.Size.Min
			switch breadth.Kind {
			case BreadthLength:
				resolved.BaseSizes[idx] = breadth.Value
				resolved.GrowthLimits[idx] = breadth.Value
				*remaining -= breadth.Value
			case BreadthPercentage:
				size := availableForTracks * breadth.Value
				resolved.BaseSizes[idx] = size
				resolved.GrowthLimits[idx] = size
				*remaining -= size
			case BreadthFlex:
				flexTracks = append(flexTracks, flexTrack{idx, breadth.Value})
			default: // auto, min-content, max-content
				size := contentSize(params.items, params.placements, idx, params.axis)
				resolved.BaseSizes[idx] = size
				resolved.GrowthLimits[idx] = size
				*remaining -= size
				autoTracks = append(autoTracks, idx)
			}
		case SizeMinMax:
			var minSize Fl
			switch min := track.Size.Min; min.Kind {
			case BreadthLength:
				minSize = min.Value
			case BreadthPercentage:
				minSize = availableForTracks * min.Value
			case BreadthAuto:
				minSize = contentSize(params.items, params.placements, idx, params.axis)
			}
			maxSize := infinity
			isFlexMax := false
			switch max := track.Size.Max; max.Kind {
			case BreadthLength:
				maxSize = max.Value
			case BreadthPercentage:
				maxSize = availableForTracks * max.Value
			case BreadthFlex:
				flexTracks = append(flexTracks, flexTrack{idx, max.Value})
				isFlexMax = true
			}
			resolved.BaseSizes[idx] = minSize
			resolved.GrowthLimits[idx] = maxSize
			// A flex maximum is sized during flex distribution and keeps
			// its claim on the full remaining space.
			if !isFlexMax {
				*remaining -= minSize
			}
		case SizeFitContent:
			size := contentSize(params.items, params.placements, idx, params.axis)
			resolved.BaseSizes[idx] = size
			resolved.GrowthLimits[idx] = size
			*remaining -= size
			autoTracks = append(autoTracks, idx)
		}
	}
	return flexTracks, autoTracks
}

type flexTrack struct {
	idx    int
	factor Fl
}

// distributeAutoSpace spreads positive leftover space evenly on the auto
// tracks.
func distributeAutoSpace(resolved *ResolvedTrackSizes, autoTracks []int, space Fl) {
	if len(autoTracks) == 0 || space <= 0 {
		return
	}
	share := space / Fl(len(autoTracks))
	for _, idx := range autoTracks {
		resolved.BaseSizes[idx] += share
		resolved.GrowthLimits[idx] = resolved.BaseSizes[idx]
	}
}

// distributeFlexSpace sizes flex tracks proportionally to their factors,
// never below their base size and never above their growth limit.
func distributeFlexSpace(resolved *ResolvedTrackSizes, flexTracks []flexTrack, space Fl) {
	if len(flexTracks) == 0 || space <= 0 {
		return
	}
	var totalFactor Fl
	for _, ft := range flexTracks {
		totalFactor += ft.factor
	}
	if totalFactor <= 0 {
		return
	}
	for _, ft := range flexTracks {
		share := space * ft.factor / totalFactor
		size := utils.MaxF(resolved.BaseSizes[ft.idx], share)
		if limit := resolved.GrowthLimits[ft.idx]; size > limit {
			size = limit
		}
		resolved.BaseSizes[ft.idx] = size
	}
}

// resolveTrackSizes runs the sizing algorithm on one axis: expand
// auto-repeat, add implicit tracks, collapse empty auto-fit tracks, then
// resolve sizes.
func resolveTrackSizes(params sizingParams) ResolvedTrackSizes {
	isAutoFit := params.axisTracks.AutoRepeat != nil &&
		params.axisTracks.AutoRepeat.Kind == RepeatAutoFit

	tracks := expandAutoRepeat(params)
	tracks = addImplicitTracks(tracks, params.placements, params.axis)
	tracks = collapseAutoFit(tracks, params.placements, params.axis, isAutoFit)

	resolved := newResolvedTrackSizes(len(tracks))

	var totalGap Fl
	if len(tracks) > 1 {
		totalGap = params.axisTracks.Gap * Fl(len(tracks)-1)
	}
	availableForTracks := params.availableSize - totalGap

	remaining := availableForTracks
	flexTracks, autoTracks := resolveNonFlexTracks(&resolved, tracks, &remaining, params, availableForTracks)

	if params.distributeAuto && len(flexTracks) == 0 && len(autoTracks) != 0 && remaining > 0 {
		distributeAutoSpace(&resolved, autoTracks, remaining)
		remaining = 0
	}

	distributeFlexSpace(&resolved, flexTracks, remaining)

	return resolved
}
