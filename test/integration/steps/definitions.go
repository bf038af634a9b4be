package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// Data setup steps

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "SecurePass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		DateFormat:         "YYYY-MM-DD",
		NumberFormat:       "US",
		FirstDayOfWeek:     "sunday",
		EmailNotifications: true,
		BudgetAlerts:       true,
		RecurringReminders: true,
		TermsAcceptedAt:    now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessToken, err := t.signToken("access", now, 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = accessToken

	refreshToken, err := t.signToken("refresh", now, 7*24*time.Hour)
	if err != nil {
		return err
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) signToken(tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      "test@example.com",
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(ttl)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "expense-tracker",
		"sub":        t.currentUserID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Icon:      "tag",
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(categoryModel).Error
}

func (t *testContext) aBudgetExistsForCategory(amount, category string, month, year int) error {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid budget amount %q: %w", amount, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budgetModel := &model.BudgetModel{
		ID:           budgetID,
		UserID:       t.currentUserID,
		CategoryName: category,
		Amount:       parsed,
		Month:        month,
		Year:         year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(budgetModel).Error
}

func (t *testContext) anExpenseExistsForCategoryOn(amount, category, date string) error {
	return t.createTransaction(amount, category, date, "expense")
}

func (t *testContext) anIncomeExistsForCategoryOn(amount, category, date string) error {
	return t.createTransaction(amount, category, date, "income")
}

func (t *testContext) createTransaction(amount, category, date, transactionType string) error {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          uuid.New(),
		UserID:      t.currentUserID,
		Amount:      parsedAmount,
		CategoryRef: category,
		Date:        parsedDate,
		Type:        transactionType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(transactionModel).Error
}

// Header steps

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

// Request steps

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{budget_id}}", t.currentBudgetID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	content = strings.ReplaceAll(content, "{{notification_id}}", t.lastNotificationID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody
	t.captureIDs(responseBody)
	return nil
}

// captureIDs remembers the identifiers of created resources so later steps
// can reference them through placeholders.
func (t *testContext) captureIDs(body map[string]any) {
	if txn, ok := body["transaction"].(map[string]any); ok {
		if id, ok := parseID(txn["id"]); ok {
			t.lastTransactionID = id
		}
	}

	// Category responses carry a top-level id alongside an icon.
	if _, hasIcon := body["icon"]; hasIcon {
		if id, ok := parseID(body["id"]); ok {
			t.currentCategoryID = id
		}
	}

	if budgets, ok := body["budgets"].([]any); ok && len(budgets) > 0 {
		if first, ok := budgets[0].(map[string]any); ok {
			if id, ok := parseID(first["id"]); ok {
				t.currentBudgetID = id
			}
		}
	}

	if notifications, ok := body["notifications"].([]any); ok && len(notifications) > 0 {
		if first, ok := notifications[0].(map[string]any); ok {
			if id, ok := parseID(first["id"]); ok {
				t.lastNotificationID = id
			}
		}
	}
}

func parseID(value any) (uuid.UUID, bool) {
	str, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Response assertion steps

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field %q should be absent but is %v", field, value)
	}
	return nil
}

// getFieldValue walks a dot separated path through nested objects and arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	fields := strings.Split(dotSeparatedField, ".")
	field := object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}

// Database assertion steps

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		if criteria != nil {
			return fmt.Errorf("expected %d objects in %q with criteria %v, got %d", quantity, table, criteria, count)
		}
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}

// Alert delivery assertion steps

func (t *testContext) budgetAlertEmailsShouldHaveBeenSent(quantity int) error {
	sent := testAlerts.Sent()
	if len(sent) != quantity {
		return fmt.Errorf("expected %d budget alert emails, got %d", quantity, len(sent))
	}
	return nil
}
