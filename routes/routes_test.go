package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/models"
	"github.com/pdemaers/skb-voedingsdagboek/services"
)

type fakeInserter struct {
	docs []interface{}
	err  error
}

func (f *fakeInserter) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.docs = append(f.docs, document)
	return &mongo.InsertOneResult{}, nil
}

type fakeRoster struct {
	docs []interface{}
	err  error
}

func (f *fakeRoster) Find(_ context.Context, _ interface{}, _ ...*options.FindOptions) (*mongo.Cursor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return mongo.NewCursorFromDocuments(f.docs, nil, nil)
}

type fixture struct {
	router  *gin.Engine
	meals   *fakeInserter
	weights *fakeInserter
	roster  *fakeRoster
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	sessions := services.NewSessionService(time.Hour)
	meals := &fakeInserter{}
	weights := &fakeInserter{}
	roster := &fakeRoster{docs: []interface{}{
		bson.D{{Key: "player_id", Value: "P1"}},
		bson.D{{Key: "player_id", Value: "P2"}},
	}}

	router := SetupRouter(log,
		sessions,
		services.NewRosterService(roster, time.Minute, log),
		services.NewDiaryService(sessions, meals, log),
		services.NewWeightService(sessions, weights, log),
	)
	return &fixture{router: router, meals: meals, weights: weights, roster: roster}
}

func (f *fixture) do(t *testing.T, method, path, sessionID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func yesterday() string {
	return time.Now().AddDate(0, 0, -1).Format("2006-01-02")
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRoster(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/roster", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"player_ids":["P1","P2"]}`, w.Body.String())
}

func TestRoster_Unavailable(t *testing.T) {
	f := newFixture(t)
	f.roster.err = errors.New("server selection timeout")

	w := f.do(t, http.MethodGet, "/api/v1/roster", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestInfo(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/info", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Extra Information")
}

func TestSessionHeaderIsMintedAndEchoed(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/session", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	minted := w.Header().Get("X-Session-ID")
	assert.NotEmpty(t, minted)

	again := f.do(t, http.MethodGet, "/api/v1/session", minted, nil)
	assert.Equal(t, minted, again.Header().Get("X-Session-ID"))
}

func TestMealFlow(t *testing.T) {
	f := newFixture(t)
	sid := f.do(t, http.MethodGet, "/api/v1/session", "", nil).Header().Get("X-Session-ID")

	// reject before anything is pending
	w := f.do(t, http.MethodPost, "/api/v1/diary/meals", sid, gin.H{
		"player_id": "P1", "date": yesterday(), "day_type": "Training", "meal_type": "Breakfast",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, f.meals.docs)

	// add two food elements
	w = f.do(t, http.MethodPost, "/api/v1/diary/items", sid, gin.H{
		"time": "08:00", "food_product": "oatmeal", "amount_value": 200, "amount_unit": "gr",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = f.do(t, http.MethodPost, "/api/v1/diary/items", sid, gin.H{
		"time": "08:05", "food_product": "milk", "amount_value": 150, "amount_unit": "ml",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/diary/items", sid, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Items []models.FoodItem `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing.Items, 2)

	// submit
	w = f.do(t, http.MethodPost, "/api/v1/diary/meals", sid, gin.H{
		"player_id": "P1", "date": "2024-05-01", "day_type": "Training", "meal_type": "Breakfast",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, f.meals.docs, 1)
	assert.Equal(t, &models.MealEntry{
		PlayerID: "P1",
		MealDate: 20240501,
		DayType:  "Training",
		MealType: "Breakfast",
		MealElements: []models.FoodItem{
			{Time: "08:00", FoodProduct: "oatmeal", AmountValue: 200, AmountUnit: "gr"},
			{Time: "08:05", FoodProduct: "milk", AmountValue: 150, AmountUnit: "ml"},
		},
	}, f.meals.docs[0])

	// pending list is cleared, player remembered
	w = f.do(t, http.MethodGet, "/api/v1/session", sid, nil)
	assert.JSONEq(t, `{"session_id":"`+sid+`","player_id":"P1","pending_items":0}`, w.Body.String())
}

func TestMealFlow_PersistenceFailure(t *testing.T) {
	f := newFixture(t)
	sid := f.do(t, http.MethodGet, "/api/v1/session", "", nil).Header().Get("X-Session-ID")

	w := f.do(t, http.MethodPost, "/api/v1/diary/items", sid, gin.H{
		"time": "12:30", "food_product": "bread", "amount_value": 2, "amount_unit": "snede",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	f.meals.err = errors.New("connection reset")
	w = f.do(t, http.MethodPost, "/api/v1/diary/meals", sid, gin.H{
		"player_id": "P1", "date": yesterday(), "day_type": "Rest", "meal_type": "Lunch",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// nothing lost: the user re-clicks submit after the store recovers
	f.meals.err = nil
	w = f.do(t, http.MethodPost, "/api/v1/diary/meals", sid, gin.H{
		"player_id": "P1", "date": yesterday(), "day_type": "Rest", "meal_type": "Lunch",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, f.meals.docs, 1)
}

func TestAddItem_RejectedAndMalformed(t *testing.T) {
	f := newFixture(t)
	sid := f.do(t, http.MethodGet, "/api/v1/session", "", nil).Header().Get("X-Session-ID")

	// domain rejection
	w := f.do(t, http.MethodPost, "/api/v1/diary/items", sid, gin.H{
		"time": "08:00", "food_product": "   ", "amount_value": 200, "amount_unit": "gr",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// missing fields fail binding
	w = f.do(t, http.MethodPost, "/api/v1/diary/items", sid, gin.H{"time": "08:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "is required")

	// malformed JSON
	req := httptest.NewRequest(http.MethodPost, "/api/v1/diary/items", bytes.NewBufferString("{not json"))
	req.Header.Set("X-Session-ID", sid)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeightFlow(t *testing.T) {
	f := newFixture(t)
	sid := f.do(t, http.MethodGet, "/api/v1/session", "", nil).Header().Get("X-Session-ID")

	w := f.do(t, http.MethodPost, "/api/v1/weights", sid, gin.H{
		"player_id": "P2", "date": "2024-05-02", "day_type": "Wedstrijd",
		"weight_before": 70.5, "weight_after": 69.8,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, &models.WeightEntry{
		PlayerID:         "P2",
		RegistrationDate: 20240502,
		DayType:          "Wedstrijd",
		WeightBefore:     70.5,
		WeightAfter:      69.8,
	}, f.weights.docs[0])

	w = f.do(t, http.MethodGet, "/api/v1/session", sid, nil)
	assert.Contains(t, w.Body.String(), `"player_id":"P2"`)
}

func TestWeightFlow_Rejections(t *testing.T) {
	f := newFixture(t)
	sid := f.do(t, http.MethodGet, "/api/v1/session", "", nil).Header().Get("X-Session-ID")

	// zero weight never reaches the service: binding requires the field,
	// and the service rejects non-positive values either way
	w := f.do(t, http.MethodPost, "/api/v1/weights", sid, gin.H{
		"player_id": "P2", "date": yesterday(), "day_type": "Wedstrijd",
		"weight_before": 0, "weight_after": 69.8,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.weights.docs)

	// negative weight passes binding but fails domain validation
	w = f.do(t, http.MethodPost, "/api/v1/weights", sid, gin.H{
		"player_id": "P2", "date": yesterday(), "day_type": "Wedstrijd",
		"weight_before": -1, "weight_after": 69.8,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, f.weights.docs)

	// bad date format
	w = f.do(t, http.MethodPost, "/api/v1/weights", sid, gin.H{
		"player_id": "P2", "date": "02/05/2024", "day_type": "Wedstrijd",
		"weight_before": 70.5, "weight_after": 69.8,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, f.weights.docs)
}
