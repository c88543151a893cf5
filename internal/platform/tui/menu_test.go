package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomb-arcade/internal/config"
	"github.com/vovakirdan/bomb-arcade/internal/core"
	_ "github.com/vovakirdan/bomb-arcade/internal/games/bomber"
)

func press(t *testing.T, m tea.Model, msgs ...tea.KeyMsg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuListsBothVariants(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	view := m.View()
	for _, title := range []string{"Bomb Arcade", "Bomb Arcade (Classic)"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu view missing %q", title)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"first", []tea.KeyMsg{keyEnter}, 0},
		{"down", []tea.KeyMsg{keyDown, keyEnter}, 1},
		{"clamped at bottom", []tea.KeyMsg{keyDown, keyDown, keyDown, keyEnter}, 1},
		{"clamped at top", []tea.KeyMsg{keyUp, keyEnter}, 0},
		{"down past end then up", []tea.KeyMsg{keyDown, keyDown, keyUp, keyEnter}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
			if len(m.items) != 2 {
				t.Fatalf("menu has %d items, want 2", len(m.items))
			}

			got := press(t, m, tt.keys...).(MenuModel)
			sel := got.Selected()
			if sel == nil {
				t.Fatal("nothing selected")
			}
			if sel.GameID != got.items[tt.want].GameID {
				t.Errorf("selected %q, want %q", sel.GameID, got.items[tt.want].GameID)
			}
		})
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if got := press(t, m, tea.KeyMsg{Type: tea.KeyTab}).(MenuModel); !got.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
	if got := press(t, m, runeKey('q')).(MenuModel); !got.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestLevelPicker(t *testing.T) {
	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		level      int
		difficulty config.DifficultyPreset
	}{
		{
			name:       "play defaults",
			keys:       []tea.KeyMsg{keyEnter},
			level:      1,
			difficulty: config.DifficultyNormal,
		},
		{
			name:       "harder",
			keys:       []tea.KeyMsg{keyDown, keyDown, keyRight, keyUp, keyUp, keyEnter},
			level:      1,
			difficulty: config.DifficultyHard,
		},
		{
			name:       "difficulty wraps left",
			keys:       []tea.KeyMsg{keyDown, keyDown, keyLeft, keyLeft, keyUp, keyUp, keyEnter},
			level:      1,
			difficulty: config.DifficultyFixed,
		},
		{
			name:       "select level four",
			keys:       []tea.KeyMsg{keyDown, keyEnter, keyDown, keyDown, keyDown, keyEnter},
			level:      4,
			difficulty: config.DifficultyNormal,
		},
		{
			name:       "level list clamps",
			keys:       pickLevelKeys(PickableLevels + 5),
			level:      PickableLevels,
			difficulty: config.DifficultyNormal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewLevelPickerModel("Bomb Arcade", 0, 80, 24)
			got := press(t, m, tt.keys...).(LevelPickerModel)

			sel := got.Selected()
			if sel == nil {
				t.Fatal("no selection")
			}
			if sel.Level != tt.level || sel.Difficulty != tt.difficulty {
				t.Errorf("selection = %+v, want level %d %s", *sel, tt.level, tt.difficulty)
			}
		})
	}
}

// pickLevelKeys opens the level list, moves down n rows and confirms.
func pickLevelKeys(n int) []tea.KeyMsg {
	keys := []tea.KeyMsg{keyDown, keyEnter}
	for range n {
		keys = append(keys, keyDown)
	}
	return append(keys, keyEnter)
}

func TestLevelPickerWithDifficulty(t *testing.T) {
	m := NewLevelPickerModel("Bomb Arcade", 0, 80, 24).WithDifficulty(config.DifficultyEasy)
	got := press(t, m, keyEnter).(LevelPickerModel)
	if sel := got.Selected(); sel == nil || sel.Difficulty != config.DifficultyEasy {
		t.Errorf("selection = %+v, want easy", sel)
	}

	// Unknown presets keep the default
	m = NewLevelPickerModel("Bomb Arcade", 0, 80, 24).WithDifficulty("brutal")
	got = press(t, m, keyEnter).(LevelPickerModel)
	if sel := got.Selected(); sel == nil || sel.Difficulty != config.DifficultyNormal {
		t.Errorf("selection = %+v, want normal", sel)
	}
}

func TestLevelPickerBack(t *testing.T) {
	m := NewLevelPickerModel("Bomb Arcade", 3, 80, 24)

	// Esc inside the level list returns to the main rows
	got := press(t, m, keyDown, keyEnter, keyEsc).(LevelPickerModel)
	if got.WantsBack() || !got.IsChoosing() {
		t.Fatal("esc in level list should not leave the picker")
	}
	if !strings.Contains(got.View(), "Best level reached: 3") {
		t.Error("main view should show the best level")
	}

	got = press(t, got, keyEsc).(LevelPickerModel)
	if !got.WantsBack() {
		t.Error("esc on main rows should go back")
	}
	if got.Selected() != nil {
		t.Error("back should not select")
	}
}
