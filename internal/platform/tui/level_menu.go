package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomb-arcade/internal/config"
	"github.com/vovakirdan/bomb-arcade/internal/core"
	bombercore "github.com/vovakirdan/bomb-arcade/internal/games/bomber/core"
)

// PickableLevels is how many start levels the picker offers.
const PickableLevels = 10

// difficultyPresets in the order the picker cycles through them.
var difficultyPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level      int // 1-based start level
	Difficulty config.DifficultyPreset
}

// Level picker rows
const (
	rowPlay = iota
	rowSelectLevel
	rowDifficulty
	rowCount
)

// LevelPickerModel lets users choose a start level and difficulty preset.
type LevelPickerModel struct {
	title         string
	cursor        int
	levelCursor   int
	difficulty    int // Index into difficultyPresets
	inLevelSelect bool
	bestLevel     int // Highest level reached so far, 0 if unknown
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     LevelSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewLevelPickerModel creates a level picker for the titled game.
func NewLevelPickerModel(title string, bestLevel, width, height int) LevelPickerModel {
	return LevelPickerModel{
		title:      title,
		difficulty: 1, // normal
		bestLevel:  bestLevel,
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		choosing:   true,
	}
}

// WithDifficulty preselects a difficulty preset. Unknown presets are ignored.
func (m LevelPickerModel) WithDifficulty(preset config.DifficultyPreset) LevelPickerModel {
	for i, p := range difficultyPresets {
		if p == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleMainKey(action)
}

func (m LevelPickerModel) handleMainKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		if m.cursor == rowDifficulty {
			m.difficulty = (m.difficulty + len(difficultyPresets) - 1) % len(difficultyPresets)
		}
	case MenuActionRight:
		if m.cursor == rowDifficulty {
			m.difficulty = (m.difficulty + 1) % len(difficultyPresets)
		}
	case MenuActionSelect:
		switch m.cursor {
		case rowPlay:
			return m.choose(1)
		case rowSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case rowDifficulty:
			m.difficulty = (m.difficulty + 1) % len(difficultyPresets)
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LevelPickerModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < PickableLevels-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.choose(m.levelCursor + 1) // 1-indexed
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m LevelPickerModel) choose(level int) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = LevelSelection{
		Level:      level,
		Difficulty: difficultyPresets[m.difficulty],
	}
	return m, tea.Quit
}

// View renders the picker.
func (m LevelPickerModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m LevelPickerModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")

	rows := []string{
		"Play from level 1",
		"Select level...",
		fmt.Sprintf("Difficulty: < %s >", difficultyPresets[m.difficulty]),
	}
	for i, row := range rows {
		if i == m.cursor {
			b.WriteString(centerStyled(menuCursorStyle, "> "+row, m.width))
		} else {
			b.WriteString(centerText("  "+row, m.width))
		}
		b.WriteString("\n")
	}

	if m.bestLevel > 0 {
		b.WriteString("\n")
		b.WriteString(centerStyled(menuDimStyle, fmt.Sprintf("Best level reached: %d", m.bestLevel), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Left/Right: Difficulty  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m LevelPickerModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	params := bombercore.DefaultParams()
	for i := range PickableLevels {
		level := i + 1
		line := fmt.Sprintf("%2d.  %d enemies  speed %.2f", level, params.EnemyCount(level), params.EnemySpeedFor(level))
		if i == m.levelCursor {
			b.WriteString(centerStyled(menuCursorStyle, "> "+line, m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelPickerModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m LevelPickerModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelPickerModel) WantsBack() bool {
	return m.back
}

// RunLevelPicker runs the picker and returns the selection. A nil selection
// means the user went back or quit; check quit to tell them apart.
func RunLevelPicker(title string, bestLevel int, preset config.DifficultyPreset, cfg core.RuntimeConfig) (sel *LevelSelection, quit bool, err error) {
	model := NewLevelPickerModel(title, bestLevel, cfg.ScreenW, cfg.ScreenH).WithDifficulty(preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok {
		return nil, true, nil
	}

	if m.IsQuitting() {
		return nil, true, nil
	}
	if m.WantsBack() {
		return nil, false, nil
	}

	return m.Selected(), false, nil
}
