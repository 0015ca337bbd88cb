package grid

import (
	"testing"

	tu "github.com/benoitkugler/layoutng/utils/testutils"
)

func TestParseTemplateRepeat(t *testing.T) {
	tracks := ParseTemplate("repeat(3, 200px)", 10)
	tu.AssertEqual(t, len(tracks.Tracks), 3)
	for _, track := range tracks.Tracks {
		tu.AssertEqual(t, track.Size, Breadth(Length(200)))
	}
	tu.AssertEqual(t, tracks.Gap, Fl(10))
	tu.AssertEqual(t, tracks.AutoRepeat == nil, true)
}

func TestParseTemplateMixed(t *testing.T) {
	tracks := ParseTemplate("100px 1fr minmax(50px, 2fr) 25% auto min-content", 0)
	tu.AssertEqual(t, len(tracks.Tracks), 6)
	tu.AssertEqual(t, tracks.Tracks[0].Size, Breadth(Length(100)))
	tu.AssertEqual(t, tracks.Tracks[1].Size, Breadth(Flex(1)))
	tu.AssertEqual(t, tracks.Tracks[2].Size, MinMax(Length(50), Flex(2)))
	tu.AssertEqual(t, tracks.Tracks[3].Size, Breadth(Percentage(0.25)))
	tu.AssertEqual(t, tracks.Tracks[4].Size, Breadth(Auto()))
	tu.AssertEqual(t, tracks.Tracks[5].Size, Breadth(TrackBreadth{Kind: BreadthMinContent}))
}

func TestParseTemplateAutoFit(t *testing.T) {
	tracks := ParseTemplate("repeat(auto-fit, minmax(200px, 1fr))", 10)
	tu.AssertEqual(t, len(tracks.Tracks), 0)
	tu.AssertEqual(t, tracks.AutoRepeat.Kind, RepeatAutoFit)
	tu.AssertEqual(t, tracks.AutoRepeat.Tracks, []TrackSize{MinMax(Length(200), Flex(1))})
}

func TestParseTemplateAutoFill(t *testing.T) {
	tracks := ParseTemplate("repeat(auto-fill, 120px)", 0)
	tu.AssertEqual(t, tracks.AutoRepeat.Kind, RepeatAutoFill)
	tu.AssertEqual(t, tracks.AutoRepeat.Tracks, []TrackSize{Breadth(Length(120))})
}

// an unparsable token stops the scan but keeps the valid prefix
func TestParseTemplateGracefulStop(t *testing.T) {
	tracks := ParseTemplate("100px 200px 3em 400px", 0)
	tu.AssertEqual(t, len(tracks.Tracks), 2)
	tu.AssertEqual(t, tracks.Tracks[0].Size, Breadth(Length(100)))
	tu.AssertEqual(t, tracks.Tracks[1].Size, Breadth(Length(200)))
}

func TestParseTemplateEmpty(t *testing.T) {
	tracks := ParseTemplate("", 5)
	tu.AssertEqual(t, tracks.Tracks, []Track{{Size: Breadth(Auto())}})
}
