package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/yajai/medtrack/internal/client/api"
	"github.com/yajai/medtrack/internal/client/config"
	"github.com/yajai/medtrack/internal/client/models"
	"github.com/yajai/medtrack/internal/client/services"
	"github.com/yajai/medtrack/internal/client/session"
	"github.com/yajai/medtrack/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services together and drives the REPL.
type App struct {
	config        *config.Config
	session       *session.Session
	authService   services.AuthService
	medService    services.MedicationService
	notifyService services.NotifyService
	reader        *bufio.Reader
}

// terminalConfirmer asks the yes/no confirmation question on the
// terminal. It satisfies services.Confirmer.
type terminalConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func (c *terminalConfirmer) Confirm(prompt string) bool {
	return Confirm(c.reader, prompt, c.out)
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	sess := session.New(db)
	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	reader := bufio.NewReader(os.Stdin)
	confirm := &terminalConfirmer{reader: reader, out: os.Stdout}

	return &App{
		config:        c,
		session:       sess,
		authService:   services.NewAuthService(apiClient, sess, logger),
		medService:    services.NewMedicationService(apiClient, sess, confirm, logger),
		notifyService: services.NewNotifyService(apiClient, sess, logger),
		reader:        reader,
	}, nil
}

// Run restores a persisted session, loads the medication list when one
// was restored, and enters the command loop.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		log.Printf("error restoring session: %s", err.Error())
	}
	if a.session.IsAuthenticated() {
		log.Printf("Welcome back, %s", a.session.Identity())
		if err := a.medService.Refresh(ctx); err != nil {
			log.Printf("Error: %s", err.Error())
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.Role() == models.RoleAdministrator
}

func (a *App) getStatus() string {
	s := a.session.Identity()
	if a.isAdmin() {
		s = s + " admin"
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
