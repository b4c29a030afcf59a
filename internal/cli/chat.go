package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/samuel-avson/retrofolio/internal/app/engagement"
	"github.com/samuel-avson/retrofolio/internal/app/interpreter"
	"github.com/samuel-avson/retrofolio/internal/daemon"
	"github.com/samuel-avson/retrofolio/internal/domain"
	"github.com/samuel-avson/retrofolio/internal/infra/catalog"
	"github.com/samuel-avson/retrofolio/internal/infra/sqlite"
)

func init() {
	rootCmd.AddCommand(chatCmd)
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Explore the portfolio terminal locally",
	Long:  `Open the retro terminal in your own shell: the same commands, secrets, and achievements the website exposes.`,
	RunE:  runChat,
}

// ─── Styles ─────────────────────────────────────────────────────────────────

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	toastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// chatModel is the bubbletea model for the local terminal.
type chatModel struct {
	input      textinput.Model
	transcript []string
	history    *interpreter.History
	interp     *interpreter.Interpreter
	engine     *engagement.Engine
	state      domain.GamificationState
}

func newChatModel(engine *engagement.Engine, interp *interpreter.Interpreter) chatModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("visitor@retrofolio:~$ ")
	ti.Placeholder = "type 'help' for commands"
	ti.Focus()
	ti.CharLimit = 256

	state := engine.StartSession(engine.LoadState())

	m := chatModel{
		input:      ti,
		transcript: []string{botStyle.Render(interpreter.BootBanner)},
		history:    interpreter.NewHistory(),
		interp:     interp,
		engine:     engine,
		state:      state,
	}
	m.drainToast()
	return m
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if line, ok := m.history.Prev(); ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil
		case tea.KeyDown:
			line, _ := m.history.Next()
			m.input.SetValue(line)
			m.input.CursorEnd()
			return m, nil
		case tea.KeyEnter:
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() chatModel {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m
	}
	m.input.SetValue("")
	m.history.Push(line)

	reply := m.interp.Respond(line)
	m.state = m.engine.TrackCommand(m.state, line)
	switch reply.Kind {
	case domain.ReplySecret:
		m.state, _, _ = m.engine.UnlockAchievement(m.state, "secret_command")
	case domain.ReplyProject:
		m.state = m.engine.TrackProjectView(m.state, reply.Project)
	case domain.ReplyClear:
		m.transcript = []string{botStyle.Render(reply.Text)}
		m.drainToast()
		return m
	}

	m.transcript = append(m.transcript,
		userStyle.Render("$ "+line),
		botStyle.Render(reply.Text),
	)
	m.drainToast()
	return m
}

// drainToast renders and clears the pending notification, if any.
func (m *chatModel) drainToast() {
	toast := m.engine.PendingToast()
	if toast == nil {
		return
	}
	switch toast.Type {
	case domain.ToastAchievement:
		a := toast.Achievement
		m.transcript = append(m.transcript,
			toastStyle.Render(fmt.Sprintf("%s ACHIEVEMENT_UNLOCKED: %s (+%d XP)", a.Icon, a.Name, a.XP)))
	case domain.ToastLevelUp:
		m.transcript = append(m.transcript,
			toastStyle.Render(fmt.Sprintf("⬆ LEVEL_UP: %d [%s]", toast.Level, engagement.LevelName(toast.Level))))
	}
	m.engine.ClearToast()
}

func (m chatModel) View() string {
	var b strings.Builder
	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	progress := engagement.ProgressForXP(m.state.XP)
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"LVL %d [%s] │ %d XP │ next: %.0f%% │ esc to quit",
		m.state.Level, engagement.LevelName(m.state.Level), m.state.XP, progress.Percentage)))
	b.WriteString("\n")
	return b.String()
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := daemon.LoadConfig()
	if err != nil {
		return err
	}

	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = daemon.Home()
	}
	db, err := sqlite.Open(dataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	data, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	engine := engagement.New(db, len(data.Projects))
	model := newChatModel(engine, interpreter.New(data))

	_, err = tea.NewProgram(model).Run()
	return err
}
