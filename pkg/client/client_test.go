package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasmi00/yatrimap-frontend/pkg/category"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
)

func writeEnvelope(w http.ResponseWriter, status int, data interface{}, errMsg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload := map[string]interface{}{"success": errMsg == ""}
	if data != nil {
		payload["data"] = data
	}
	if errMsg != "" {
		payload["error"] = errMsg
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session, err := NewSession(NewMemoryStore())
	require.NoError(t, err)
	return New(srv.URL, session)
}

func TestLoginStoresCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			writeEnvelope(w, http.StatusUnauthorized, nil, "invalid credentials")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"token":  "jwt-token",
			"userId": 42,
			"role":   "user",
		}, "")
	})

	c := newTestClient(t, mux)
	assert.False(t, c.Session().IsAuthenticated())

	resp, err := c.Login(context.Background(), "trekker@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.Token)
	assert.True(t, c.Session().IsAuthenticated())
	assert.Equal(t, uint(42), c.Session().UserID())

	require.NoError(t, c.Logout())
	assert.False(t, c.Session().IsAuthenticated())
}

func TestLoginRejectedSurfacesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, nil, "invalid credentials")
	})

	c := newTestClient(t, mux)
	_, err := c.Login(context.Background(), "trekker@example.com", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.False(t, c.Session().IsAuthenticated())
}

func TestBearerTokenAttachedWhenAuthenticated(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/destination", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, []models.Destination{}, "")
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.session.begin(Credentials{Token: "abc", UserID: 7}))

	_, err := c.Destinations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestDestinationsByCategoryEmptyMapsToErrNoDestinations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/destination/category/Camping", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, nil, "no destinations available")
	})

	c := newTestClient(t, mux)
	_, err := c.DestinationsByCategory(context.Background(), "Camping")
	assert.ErrorIs(t, err, category.ErrNoDestinations)
}

func TestCategoryCounts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/destination", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, []models.Destination{
			{Title: "Everest Base Camp", Category: "Trekking"},
			{Title: "Annapurna Circuit", Category: "Trekking"},
			{Title: "Rara Lake", Category: "Lake and River"},
		}, "")
	})

	c := newTestClient(t, mux)
	counts, err := c.CategoryCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, counts["Trekking"])
	assert.Equal(t, 1, counts["Lake and River"])
	assert.Equal(t, 0, counts["Camping"])
	assert.Len(t, counts, len(category.Catalogue))
}

// bucketListServer is a stateful fake of the bucket-list endpoints
type bucketListServer struct {
	items  map[uint]models.BucketListItem
	nextID uint
}

func newBucketListServer() *bucketListServer {
	return &bucketListServer{items: make(map[uint]models.BucketListItem), nextID: 1}
}

func (s *bucketListServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bucket-list", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			out := make([]models.BucketListItem, 0, len(s.items))
			for _, item := range s.items {
				out = append(out, item)
			}
			writeEnvelope(w, http.StatusOK, out, "")
		case http.MethodPost:
			var body struct {
				DestinationID uint `json:"destinationId"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			if _, exists := s.items[body.DestinationID]; exists {
				writeEnvelope(w, http.StatusConflict, nil, "already in bucket list")
				return
			}
			item := models.BucketListItem{DestinationID: body.DestinationID}
			item.ID = s.nextID
			s.nextID++
			s.items[body.DestinationID] = item
			writeEnvelope(w, http.StatusCreated, item, "")
		default:
			writeEnvelope(w, http.StatusMethodNotAllowed, nil, "method not allowed")
		}
	})
	mux.HandleFunc("/api/bucket-list/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			writeEnvelope(w, http.StatusMethodNotAllowed, nil, "method not allowed")
			return
		}
		raw, err := strconv.ParseUint(path.Base(r.URL.Path), 10, 32)
		if err != nil {
			writeEnvelope(w, http.StatusBadRequest, nil, "invalid id")
			return
		}
		destinationID := uint(raw)
		if _, exists := s.items[destinationID]; !exists {
			writeEnvelope(w, http.StatusNotFound, nil, "not in bucket list")
			return
		}
		delete(s.items, destinationID)
		writeEnvelope(w, http.StatusOK, nil, "")
	})
	return mux
}

func TestBucketListToggleRoundTrip(t *testing.T) {
	srv := newBucketListServer()
	c := newTestClient(t, srv.handler())
	list := NewBucketList(c)
	ctx := context.Background()

	require.NoError(t, list.Refresh(ctx))
	dest := &models.Destination{Title: "Gosaikunda"}
	dest.ID = 9
	assert.False(t, list.Contains(dest.ID))

	added, err := list.Toggle(ctx, dest)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, list.Contains(dest.ID))
	assert.Equal(t, 1, list.Len())

	added, err = list.Toggle(ctx, dest)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, list.Contains(dest.ID))
	assert.Equal(t, 0, list.Len())

	// the server agrees with the cache after the round trip
	assert.Empty(t, srv.items)
}

func TestBucketListCacheFollowsServerOnFailure(t *testing.T) {
	srv := newBucketListServer()
	seeded := models.BucketListItem{DestinationID: 3}
	seeded.ID = 1
	srv.items[3] = seeded

	c := newTestClient(t, srv.handler())
	list := NewBucketList(c)
	ctx := context.Background()
	require.NoError(t, list.Refresh(ctx))
	require.True(t, list.Contains(3))

	// a remove that the server rejects leaves the cache untouched
	err := list.Remove(ctx, 99)
	require.Error(t, err)
	assert.True(t, list.Contains(3))
	assert.Equal(t, 1, list.Len())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)

	require.NoError(t, store.Save(Credentials{Token: "tok", UserID: 5}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, uint(5), loaded.UserID)

	require.NoError(t, store.Clear())
	creds, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)
}
