// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/doin-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Auth ────────────────────────────────────────────────────────────────────

func TestLogin_TokenObject(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
			var creds models.Credentials
			require.NoError(t, json.NewDecoder(req.Body).Decode(&creds))
			assert.Equal(t, models.Credentials{Username: "alice", Password: "secret1"}, creds)
			assert.Empty(t, req.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, map[string]string{"token": "abc.def.ghi"})
		})
	})
	a := NewHTTPAuthAdapter(newTestGateway(t, srv.URL, WithBearerToken(staticToken("stale"))))

	token, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestLogin_RawTokenString(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("abc.def.ghi"))
		})
	})
	a := NewHTTPAuthAdapter(newTestGateway(t, srv.URL))

	token, err := a.Login(context.Background(), models.Credentials{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	})
	a := NewHTTPAuthAdapter(newTestGateway(t, srv.URL))

	_, err := a.Login(context.Background(), models.Credentials{Username: "alice"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
}

func TestRegister_BadRequest(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post("/register", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte("username taken"))
		})
	})
	a := NewHTTPAuthAdapter(newTestGateway(t, srv.URL))

	err := a.Register(context.Background(), models.RegistrationData{Username: "alice"})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "username taken")
}

func TestForgotPassword_Success(t *testing.T) {
	var got models.ForgotPasswordData
	srv := newBackend(t, func(r chi.Router) {
		r.Post("/forgot-password", func(w http.ResponseWriter, req *http.Request) {
			_ = json.NewDecoder(req.Body).Decode(&got)
		})
	})
	a := NewHTTPAuthAdapter(newTestGateway(t, srv.URL))

	data := models.ForgotPasswordData{Username: "bob", SecurityQuestionValue: "pet", SecurityQuestionAnswer: "rex"}
	require.NoError(t, a.ForgotPassword(context.Background(), data))
	assert.Equal(t, data, got)
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.ValidateResult
	}{
		{name: "valid field", body: `{"valid":true,"message":"alice"}`, want: models.ValidateResult{Valid: true, Message: "alice"}},
		{name: "success field", body: `{"success":true}`, want: models.ValidateResult{Valid: true}},
		{name: "invalid", body: `{"valid":false,"message":"expired"}`, want: models.ValidateResult{Message: "expired"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, func(r chi.Router) {
				r.Post("/validateToken", func(w http.ResponseWriter, req *http.Request) {
					var body models.TokenRequest
					_ = json.NewDecoder(req.Body).Decode(&body)
					assert.Equal(t, "tok", body.Token)
					_, _ = w.Write([]byte(tt.body))
				})
			})
			a := NewHTTPAuthAdapter(newTestGateway(t, srv.URL))

			got, err := a.ValidateToken(context.Background(), "tok")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Users ───────────────────────────────────────────────────────────────────

func TestGetByUsername(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get("/users", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "alice", req.URL.Query().Get("username"))
			writeJSON(w, http.StatusOK, models.UserProfile{ID: 1, Username: "alice"})
		})
	})
	a := NewHTTPUserAdapter(newTestGateway(t, srv.URL))

	user, err := a.GetByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, models.UserProfile{ID: 1, Username: "alice"}, user)
}

func TestGetByID_NotFound(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get("/users", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "7", req.URL.Query().Get("id"))
			w.WriteHeader(http.StatusNotFound)
		})
	})
	a := NewHTTPUserAdapter(newTestGateway(t, srv.URL))

	_, err := a.GetByID(context.Background(), 7)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileImage_MultipartWithProgress(t *testing.T) {
	content := bytes.Repeat([]byte("x"), 4096)
	srv := newBackend(t, func(r chi.Router) {
		r.Put("/users/update-profile-img", func(w http.ResponseWriter, req *http.Request) {
			f, header, err := req.FormFile("file")
			require.NoError(t, err)
			defer f.Close()
			got, _ := io.ReadAll(f)
			assert.Equal(t, content, got)
			assert.Equal(t, "me.png", header.Filename)
			_, _ = w.Write([]byte("true"))
		})
	})
	a := NewHTTPUserAdapter(newTestGateway(t, srv.URL))

	var last models.UploadProgress
	err := a.UpdateProfileImage(context.Background(),
		models.FileUpload{Name: "me.png", Reader: bytes.NewReader(content)},
		func(p models.UploadProgress) { last = p })

	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), last.Sent)
	assert.Equal(t, int64(len(content)), last.Total)
	assert.Equal(t, 100, last.Percent())
}

// ── Events ──────────────────────────────────────────────────────────────────

func TestListEvents_Envelope(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get("/events", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "2", req.URL.Query().Get("page"))
			assert.Equal(t, "5", req.URL.Query().Get("size"))
			_, _ = w.Write([]byte(`{"content":[{"id":1,"location":"park","time":"2026-05-01T18:30:00"}],
				"number":2,"size":5,"totalPages":4,"totalElements":16,"last":false}`))
		})
	})
	a := NewHTTPEventAdapter(newTestGateway(t, srv.URL))

	page, err := a.List(context.Background(), models.PageRequest{Page: 2, Size: 5})

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "park", page.Content[0].Location)
	assert.Equal(t, 18, page.Content[0].Time.Hour())
	assert.Equal(t, 4, page.TotalPages)
	assert.False(t, page.Last)
}

func TestListPublic_BareArray(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get("/events/public", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
		})
	})
	a := NewHTTPEventAdapter(newTestGateway(t, srv.URL))

	page, err := a.ListPublic(context.Background(), models.PageRequest{})

	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.True(t, page.Last)
}

func TestListByUser_Path(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get("/events/users/{id}", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "9", chi.URLParam(req, "id"))
			_, _ = w.Write([]byte(`{"content":[],"number":0,"totalPages":0}`))
		})
	})
	a := NewHTTPEventAdapter(newTestGateway(t, srv.URL))

	page, err := a.ListByUser(context.Background(), 9, models.PageRequest{Size: 10})

	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.True(t, page.Last)
}

func TestUpcomingAndGet(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Get("/events/upcoming", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"id":3}]`))
		})
		r.Get("/events/{id}", func(w http.ResponseWriter, req *http.Request) {
			_, _ = w.Write([]byte(`{"id":` + chi.URLParam(req, "id") + `,"description":"lunch"}`))
		})
	})
	a := NewHTTPEventAdapter(newTestGateway(t, srv.URL))

	upcoming, err := a.Upcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, int64(3), upcoming[0].ID)

	event, err := a.Get(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), event.ID)
	assert.Equal(t, "lunch", event.Description)
}

func TestCreateAndJoin(t *testing.T) {
	var joinedBy string
	srv := newBackend(t, func(r chi.Router) {
		r.Post("/events", func(w http.ResponseWriter, req *http.Request) {
			var e models.Event
			require.NoError(t, json.NewDecoder(req.Body).Decode(&e))
			e.ID = 44
			writeJSON(w, http.StatusOK, e)
		})
		r.Post("/events/{id}/join", func(w http.ResponseWriter, req *http.Request) {
			joinedBy = req.URL.Query().Get("userId")
			_, _ = w.Write([]byte("true"))
		})
	})
	a := NewHTTPEventAdapter(newTestGateway(t, srv.URL))

	created, err := a.Create(context.Background(), models.Event{Location: "gym", Visibility: models.VisibilityPublic})
	require.NoError(t, err)
	assert.Equal(t, int64(44), created.ID)
	assert.Equal(t, "gym", created.Location)

	require.NoError(t, a.Join(context.Background(), created.ID, 5))
	assert.Equal(t, "5", joinedBy)
}

func TestAddImage(t *testing.T) {
	srv := newBackend(t, func(r chi.Router) {
		r.Post("/events/{id}/images", func(w http.ResponseWriter, req *http.Request) {
			_, _, err := req.FormFile("file")
			assert.NoError(t, err)
			_, _ = w.Write([]byte("true"))
		})
	})
	a := NewHTTPEventAdapter(newTestGateway(t, srv.URL))

	err := a.AddImage(context.Background(), 1, models.FileUpload{Name: "a.jpg", Reader: bytes.NewReader([]byte("img"))}, nil)

	require.NoError(t, err)
}

// ── Friends ─────────────────────────────────────────────────────────────────

func TestFriends_Endpoints(t *testing.T) {
	var calls []string
	friends := []models.Friendship{{ID: 2, Username: "bob", Status: models.FriendshipConfirmed}}
	srv := newBackend(t, func(r chi.Router) {
		r.Get("/friends", func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, http.StatusOK, friends) })
		r.Get("/friends/friend-requests", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, []models.Friendship{{ID: 3, Username: "carol", Status: models.FriendshipPending}})
		})
		r.Get("/friends/{username}", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, []models.Friendship{{Username: chi.URLParam(req, "username"), Status: models.FriendshipNotAdded}})
		})
		r.Post("/friends/add/{username}", func(w http.ResponseWriter, req *http.Request) {
			calls = append(calls, "add:"+chi.URLParam(req, "username"))
		})
		r.Post("/friends/confirm/{username}", func(w http.ResponseWriter, req *http.Request) {
			calls = append(calls, "confirm:"+chi.URLParam(req, "username"))
		})
		r.Delete("/friends/remove/{username}", func(w http.ResponseWriter, req *http.Request) {
			calls = append(calls, "remove:"+chi.URLParam(req, "username"))
		})
	})
	a := NewHTTPFriendAdapter(newTestGateway(t, srv.URL))
	ctx := context.Background()

	got, err := a.Friends(ctx)
	require.NoError(t, err)
	assert.Equal(t, friends, got)

	requests, err := a.FriendRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipPending, requests[0].Status)

	found, err := a.Find(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, "dave", found[0].Username)

	require.NoError(t, a.Add(ctx, "dave"))
	require.NoError(t, a.Confirm(ctx, "carol"))
	require.NoError(t, a.Remove(ctx, "bob"))
	assert.Equal(t, []string{"add:dave", "confirm:carol", "remove:bob"}, calls)
}

// ── Images ──────────────────────────────────────────────────────────────────

func TestGetImage(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G'}
	srv := newBackend(t, func(r chi.Router) {
		r.Get("/images/{id}", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(base64.StdEncoding.EncodeToString(raw)))
		})
	})
	a := NewHTTPImageAdapter(newTestGateway(t, srv.URL))

	got, err := a.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDecodeImageData(t *testing.T) {
	want := []byte("hello")
	enc := base64.StdEncoding.EncodeToString(want)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain", input: enc},
		{name: "json string", input: `"` + enc + `"`},
		{name: "data url", input: "data:image/png;base64," + enc},
		{name: "unpadded", input: base64.RawStdEncoding.EncodeToString(want)},
		{name: "garbage", input: "%%%", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeImageData(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDecode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
