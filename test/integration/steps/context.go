// Package steps provides the step definitions for the API feature tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
	"github.com/expense-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	envInit    sync.Once
	serverInit sync.Once

	testServerPort int
	testDB         *mock.Db
	testRedis      *redis.Client
	testClock      *mock.Clock
	testAlerts     *mock.AlertSender
)

// testContext holds the per-scenario state.
type testContext struct {
	uri      string
	client   *http.Client
	headers  map[string]string
	response *response
	db       *mock.Db

	accessToken  string
	refreshToken string

	currentUserID      uuid.UUID
	currentCategoryID  uuid.UUID
	currentBudgetID    uuid.UUID
	lastTransactionID  uuid.UUID
	lastNotificationID uuid.UUID
}

type response struct {
	status int
	body   any
}

func initializeEnv() {
	envInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)

		testClock = mock.NewClock()
		testAlerts = mock.NewAlertSender()
		testRedis = mock.NewRedis()
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializeEnv()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("expense_tracker", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"categories":     &model.CategoryModel{},
			"transactions":   &model.TransactionModel{},
			"budgets":        &model.BudgetModel{},
			"notifications":  &model.NotificationModel{},
		}),
	}
	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)

	// Data setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a budget of "([^"]*)" exists for category "([^"]*)" in month (\d+) of (\d+)$`, test.aBudgetExistsForCategory)
	ctx.Given(`^an expense of "([^"]*)" exists for category "([^"]*)" on "([^"]*)"$`, test.anExpenseExistsForCategoryOn)
	ctx.Given(`^an income of "([^"]*)" exists for category "([^"]*)" on "([^"]*)"$`, test.anIncomeExistsForCategoryOn)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Alert delivery assertion steps
	ctx.Then(`^(\d+) budget alert emails should have been sent$`, test.budgetAlertEmailsShouldHaveBeenSent)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentBudgetID = uuid.Nil
	t.lastTransactionID = uuid.Nil
	t.lastNotificationID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if testRedis != nil {
		_ = mock.ClearRedis(testRedis)
	}
	if testAlerts != nil {
		testAlerts.Reset()
	}
	if testClock != nil {
		testClock.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			injector := dependency.NewInjector(cfg, testDB.DbConn, dependency.Options{
				RedisClient: testRedis,
				AlertSender: testAlerts,
				Clock:       testClock,
			})
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for server readiness
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	testClock.Set(parsed)
	return nil
}
