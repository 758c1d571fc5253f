package tests

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"projectmanager/internal/adapter/api"
	dbadapter "projectmanager/internal/adapter/db"
	"projectmanager/internal/server"
	"projectmanager/internal/server/handlers"
	"projectmanager/pkg/translator"
)

const translationFolder = "../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguagePl, translator.LanguageEn},
	})
	os.Exit(m.Run())
}

// IntegrationSuiteBase runs the full backend against a throwaway sqlite
// file and exposes a real HTTP client pointed at it, so suites exercise
// the same request path the CLI does.
type IntegrationSuiteBase struct {
	suite.Suite

	DB     *sqlx.DB
	Server *httptest.Server
	Client *api.Client
}

func (s *IntegrationSuiteBase) SetupTest() {
	db, err := dbadapter.ConnectDB(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.DB = db

	router := gin.New()
	server.RegisterRoutes(
		router,
		handlers.NewHealthHandler(db),
		handlers.NewUserHandler(dbadapter.NewUserRepository(db)),
		handlers.NewProjectHandler(dbadapter.NewProjectRepository(db)),
		handlers.NewTaskHandler(dbadapter.NewTaskRepository(db)),
	)

	s.Server = httptest.NewServer(router)
	s.Client = api.NewClient(s.Server.URL, 5*time.Second, translator.LanguageEn)
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.Server != nil {
		s.Server.Close()
	}
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}
}
