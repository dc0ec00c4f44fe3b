// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/config"
	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/infra/dependency"
	"github.com/finance-dashboard/backend/internal/infra/kv"
	"github.com/finance-dashboard/backend/internal/integration/adapters"
	"github.com/finance-dashboard/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string
	passcode    string

	// Captured values, substituted into later request paths
	rememberedID string

	// Config
	cfg   *config.Config
	store adapter.KeyValueStore
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			cfg:            testConfig(),
		}
		if err := tc.startServer(); err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDataSteps(ctx)
}

// testConfig builds a configuration with every optional integration disabled.
func testConfig() *config.Config {
	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Store.Backend = config.StoreBackendMemory
	cfg.AccessLock.PasscodeHash = ""
	cfg.Advisor.APIKey = ""
	cfg.Email.ResendAPIKey = ""
	cfg.Email.Recipient = ""
	return cfg
}

// startServer wires the application over the scenario's store backend and
// starts an HTTP test server on it. The KV_TEST_BACKEND environment variable
// switches scenarios onto miniredis instead of the in-memory store.
func (tc *TestContext) startServer() error {
	if tc.server != nil {
		tc.server.Close()
	}

	if os.Getenv("KV_TEST_BACKEND") == "redis" {
		client := mock.NewRedis()
		if err := mock.ClearRedis(client); err != nil {
			return fmt.Errorf("failed to clear redis: %w", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		store, err := kv.NewRedisStore(ctx, client)
		if err != nil {
			return fmt.Errorf("failed to open redis store: %w", err)
		}
		tc.store = store
	} else {
		tc.store = kv.NewMemoryStore()
	}

	injector := dependency.NewInjector(tc.cfg, tc.store, func() bool { return true })
	engine := injector.Router.Setup(tc.cfg.Server.Environment)
	tc.server = httptest.NewServer(engine)
	return nil
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^the access lock is enabled with passcode "([^"]*)"$`, theAccessLockIsEnabledWithPasscode)
	ctx.Step(`^I hold a valid session token$`, iHoldAValidSessionToken)
	ctx.Step(`^I remember the response field "([^"]*)"$`, iRememberTheResponseField)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// registerDataSteps registers steps that seed collections through the API.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a "([^"]*)" transaction of (\d+) at "([^"]*)" on "([^"]*)" exists$`, aTransactionExists)
	ctx.Step(`^an asset "([^"]*)" of type "([^"]*)" with quantity (\d+) bought at (\d+) now at (\d+) exists$`, anAssetExists)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theAccessLockIsEnabledWithPasscode(ctx context.Context, passcode string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	hash, err := adapters.NewPasscodeService().HashPasscode(passcode)
	if err != nil {
		return ctx, fmt.Errorf("failed to hash passcode: %w", err)
	}

	tc.cfg.AccessLock.PasscodeHash = hash
	tc.passcode = passcode
	if err := tc.startServer(); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iHoldAValidSessionToken(ctx context.Context) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"passcode":%q}`, tc.passcode)
	resp, err := http.Post(tc.server.URL+"/api/v1/session", "application/json", strings.NewReader(body))
	if err != nil {
		return ctx, fmt.Errorf("failed to create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("session creation returned status %d", resp.StatusCode)
	}

	var session struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return ctx, fmt.Errorf("failed to decode session response: %w", err)
	}

	tc.accessToken = session.Token
	return SetTestContext(ctx, tc), nil
}

func iRememberTheResponseField(ctx context.Context, field string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	value, err := responseField(ctx, field)
	if err != nil {
		return ctx, err
	}
	tc.rememberedID = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return doRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return doRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func iSetHeaderTo(ctx context.Context, key, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[key] = value
	return SetTestContext(ctx, tc), nil
}

func doRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	endpoint = strings.ReplaceAll(endpoint, "{id}", tc.rememberedID)

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func aTransactionExists(ctx context.Context, txnType string, amount int, merchant, date string) (context.Context, error) {
	body := fmt.Sprintf(`{"type":%q,"amount":"%d","merchant":%q,"date":%q}`, txnType, amount, merchant, date)
	newCtx, err := doRequest(ctx, http.MethodPost, "/api/v1/transactions", strings.NewReader(body))
	if err != nil {
		return newCtx, err
	}
	return newCtx, expectStatus(newCtx, http.StatusCreated)
}

func anAssetExists(ctx context.Context, name, assetType string, quantity, purchasePrice, currentPrice int) (context.Context, error) {
	body := fmt.Sprintf(
		`{"name":%q,"type":%q,"quantity":"%d","purchase_price":"%d","current_price":"%d"}`,
		name, assetType, quantity, purchasePrice, currentPrice,
	)
	newCtx, err := doRequest(ctx, http.MethodPost, "/api/v1/assets", strings.NewReader(body))
	if err != nil {
		return newCtx, err
	}
	return newCtx, expectStatus(newCtx, http.StatusCreated)
}

func expectStatus(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	return expectStatus(ctx, expectedStatus)
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var parsed any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substring string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), substring) {
		return fmt.Errorf("response does not contain %q: %s", substring, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expectedValue string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if number, ok := value.(float64); ok {
		actual = strconv.FormatFloat(number, 'f', -1, 64)
	}
	if actual != expectedValue {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expectedValue, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := responseField(ctx, field)
	return err
}

// responseField resolves a dot-separated path into the decoded response body.
// Numeric path segments index into arrays.
func responseField(ctx context.Context, field string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}

	var parsed any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := parsed
	for _, segment := range strings.Split(field, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", field, tc.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in field %q", segment, field)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response: %s", field, tc.responseBody)
		}
	}
	return current, nil
}
