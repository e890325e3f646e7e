package content

import (
	"strings"
	"testing"
)

func validWorlds() []World {
	return []World{
		{ID: "wa", Name: "Alpha", Order: 1, StarsToUnlock: 0},
		{ID: "wb", Name: "Beta", Order: 2, StarsToUnlock: 4},
	}
}

func validLevels() []Level {
	return []Level{
		{ID: "wa-1", WorldID: "wa", Name: "One", Order: 1, Kind: KindQuiz, Difficulty: 1, StarsRequired: 0, MaxScore: 5},
		{ID: "wa-2", WorldID: "wa", Name: "Two", Order: 2, Kind: KindExploration, Difficulty: 1, StarsRequired: 2, MaxScore: 0},
		{ID: "wb-1", WorldID: "wb", Name: "Three", Order: 1, Kind: KindSorting, Difficulty: 2, StarsRequired: 0, MaxScore: 6},
	}
}

func TestValidateAcceptsGoodTables(t *testing.T) {
	if err := validateTables(validWorlds(), validLevels()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ws []World, ls []Level) ([]World, []Level)
		wantMsg string
	}{
		{
			name: "duplicate world ID",
			mutate: func(ws []World, ls []Level) ([]World, []Level) {
				ws = append(ws, ws[0])
				return ws, ls
			},
			wantMsg: "duplicate world ID",
		},
		{
			name: "duplicate level ID",
			mutate: func(ws []World, ls []Level) ([]World, []Level) {
				ls = append(ls, ls[0])
				return ws, ls
			},
			wantMsg: "duplicate level ID",
		},
		{
			name: "dangling world reference",
			mutate: func(ws []World, ls []Level) ([]World, []Level) {
				ls[0].WorldID = "ghost"
				return ws, ls
			},
			wantMsg: "nonexistent world",
		},
		{
			name: "no open world",
			mutate: func(ws []World, ls []Level) ([]World, []Level) {
				ws[0].StarsToUnlock = 1
				return ws, ls
			},
			wantMsg: "StarsToUnlock == 0",
		},
		{
			name: "no entry level",
			mutate: func(ws []World, ls []Level) ([]World, []Level) {
				ls[2].StarsRequired = 1
				return ws, ls
			},
			wantMsg: "StarsRequired == 0",
		},
		{
			name: "graded exploration level",
			mutate: func(ws []World, ls []Level) ([]World, []Level) {
				ls[1].MaxScore = 5
				return ws, ls
			},
			wantMsg: "ungraded",
		},
		{
			name: "unreachable gate",
			mutate: func(ws []World, ls []Level) ([]World, []Level) {
				ls[1].StarsRequired = 4 // world max without it is 3
				return ws, ls
			},
			wantMsg: "unreachable",
		},
		{
			name: "unknown kind",
			mutate: func(ws []World, ls []Level) ([]World, []Level) {
				ls[0].Kind = "karaoke"
				return ws, ls
			},
			wantMsg: "unknown kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, ls := tt.mutate(validWorlds(), validLevels())
			err := validateTables(ws, ls)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}
