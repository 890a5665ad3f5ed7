package navigate

import (
	"testing"

	"w3u-navigator/internal/model"
)

func TestFlatten_TwoLevelTree(t *testing.T) {
	doc := &model.Document{
		Name: "Root",
		Groups: []model.Group{
			{
				Name:     "News",
				Stations: []model.Station{{Name: "CNN", URL: "https://x/cnn.m3u"}},
			},
		},
	}
	opts := Flatten(doc)
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	if opts[0].Name != "News" || !opts[0].IsGroup || opts[0].Depth != 0 || opts[0].Parent != nil {
		t.Errorf("unexpected option 0: %+v", opts[0])
	}
	if opts[1].Name != "CNN" || opts[1].IsGroup || opts[1].Depth != 1 || opts[1].Parent == nil || opts[1].Parent.Name != "News" {
		t.Errorf("unexpected option 1: %+v", opts[1])
	}
}

func TestFlatten_ArbitraryDepthPreOrder(t *testing.T) {
	doc := &model.Document{
		Name: "Root",
		Groups: []model.Group{
			{
				Name:     "A",
				Stations: []model.Station{{Name: "A1"}},
				Groups: []model.Group{
					{
						Name:     "B",
						Stations: []model.Station{{Name: "B1"}},
						Groups: []model.Group{
							{Name: "C", Stations: []model.Station{{Name: "C1"}}},
						},
					},
				},
			},
			{Name: "D"},
		},
	}
	opts := Flatten(doc)
	wantNames := []string{"A", "A1", "B", "B1", "C", "C1", "D"}
	wantDepths := []int{0, 1, 1, 2, 2, 3, 0}
	if len(opts) != len(wantNames) {
		t.Fatalf("expected %d options, got %d", len(wantNames), len(opts))
	}
	for i, opt := range opts {
		if opt.Name != wantNames[i] {
			t.Errorf("option %d name = %q, want %q", i, opt.Name, wantNames[i])
		}
		if opt.Depth != wantDepths[i] {
			t.Errorf("option %d depth = %d, want %d", i, opt.Depth, wantDepths[i])
		}
	}
}

func TestFlatten_StationsOnlyDocument(t *testing.T) {
	doc := &model.Document{
		Name: "Flat",
		Stations: []model.Station{
			{Name: "S1", URL: "https://x/1.m3u"},
			{Name: "S2", URL: "https://x/2.m3u"},
		},
	}
	opts := Flatten(doc)
	if len(opts) != 2 {
		t.Fatalf("expected 2 options, got %d", len(opts))
	}
	for i, opt := range opts {
		if opt.Depth != 0 || opt.IsGroup || opt.Parent != nil {
			t.Errorf("option %d should be a flat station: %+v", i, opt)
		}
	}
}

func TestFlatten_EmptyDocument(t *testing.T) {
	if opts := Flatten(&model.Document{Name: "Empty"}); len(opts) != 0 {
		t.Fatalf("expected no options, got %d", len(opts))
	}
}
