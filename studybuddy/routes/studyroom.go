package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studybuddy/studybuddy/config"
	"studybuddy/studybuddy/controllers"
	"studybuddy/studybuddy/middlewares"
	"studybuddy/studybuddy/services/studyroom"
	"studybuddy/studybuddy/sources/psql/dao"
	"studybuddy/studybuddy/types"
	"studybuddy/studybuddy/utils/httputils"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func StudyRoomRoutes(ctrl *controllers.StudyRoomController, hub *studyroom.Hub, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var req types.CreateRoomRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httputils.Error(w, http.StatusBadRequest, "invalid request body")
				return
			}
			room, err := ctrl.CreateRoom(r.Context(), middlewares.UserID(r), req)
			if err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusCreated, map[string]interface{}{"room": room}, "Study room created successfully")
		})

		gr.Get("/", func(w http.ResponseWriter, r *http.Request) {
			filter := dao.RoomFilter{
				Subject:    r.URL.Query().Get("subject"),
				Difficulty: r.URL.Query().Get("difficulty"),
			}
			if raw := r.URL.Query().Get("isActive"); raw != "" {
				active := raw == "true"
				filter.IsActive = &active
			}
			rooms, err := ctrl.ListRooms(r.Context(), middlewares.UserID(r), filter)
			if err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusOK, map[string]interface{}{"rooms": rooms}, "Study rooms retrieved successfully")
		})

		gr.Get("/{roomID}", func(w http.ResponseWriter, r *http.Request) {
			roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
			if err != nil {
				httputils.Error(w, http.StatusBadRequest, "invalid room id")
				return
			}
			room, err := ctrl.GetRoom(r.Context(), roomID)
			if err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusOK, map[string]interface{}{"room": room}, "Study room retrieved successfully")
		})

		gr.Delete("/{roomID}", func(w http.ResponseWriter, r *http.Request) {
			roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
			if err != nil {
				httputils.Error(w, http.StatusBadRequest, "invalid room id")
				return
			}
			if err := ctrl.DeleteRoom(r.Context(), roomID, middlewares.UserID(r)); err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusOK, nil, "Study room deleted successfully")
		})

		gr.Post("/{roomID}/join", func(w http.ResponseWriter, r *http.Request) {
			roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
			if err != nil {
				httputils.Error(w, http.StatusBadRequest, "invalid room id")
				return
			}
			room, err := ctrl.JoinRoom(r.Context(), roomID, middlewares.UserID(r))
			if err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusOK, map[string]interface{}{"room": room}, "Joined study room successfully")
		})

		gr.Post("/{roomID}/leave", func(w http.ResponseWriter, r *http.Request) {
			roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
			if err != nil {
				httputils.Error(w, http.StatusBadRequest, "invalid room id")
				return
			}
			room, err := ctrl.LeaveRoom(r.Context(), roomID, middlewares.UserID(r))
			if err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusOK, map[string]interface{}{"room": room}, "Left study room successfully")
		})

		gr.Post("/{roomID}/messages", func(w http.ResponseWriter, r *http.Request) {
			roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
			if err != nil {
				httputils.Error(w, http.StatusBadRequest, "invalid room id")
				return
			}
			var req types.SendMessageRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				httputils.Error(w, http.StatusBadRequest, "invalid request body")
				return
			}
			result, err := ctrl.SendMessage(r.Context(), roomID, middlewares.UserID(r), req.Content)
			if err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusCreated, result, "Message sent successfully")
		})

		gr.Get("/{roomID}/messages", func(w http.ResponseWriter, r *http.Request) {
			roomID, err := uuid.Parse(chi.URLParam(r, "roomID"))
			if err != nil {
				httputils.Error(w, http.StatusBadRequest, "invalid room id")
				return
			}
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			msgs, err := ctrl.GetMessages(r.Context(), roomID, page, limit)
			if err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusOK, map[string]interface{}{"messages": msgs}, "Messages retrieved successfully")
		})
	})

	// Live message feed. The client sends one auth frame, then receives
	// every message appended to the room (AI summaries included).
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		typ, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "unsupported data")
			return
		}
		var input struct {
			Token  string `json:"token"`
			RoomID string `json:"room_id"`
		}
		if err := json.Unmarshal(data, &input); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
			return
		}

		token, err := jwt.Parse(input.Token, middlewares.Keyfunc(cfg))
		if err != nil || !token.Valid {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid token"}`))
			conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return
		}
		roomID, err := uuid.Parse(input.RoomID)
		if err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid room_id"}`))
			conn.Close(websocket.StatusPolicyViolation, "invalid room_id")
			return
		}
		if _, err := ctrl.GetRoom(ctx, roomID); err != nil {
			conn.Write(ctx, websocket.MessageText, []byte(`{"error":"room not found"}`))
			conn.Close(websocket.StatusPolicyViolation, "room not found")
			return
		}

		feed, cancel := hub.Subscribe(roomID)
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case msg, ok := <-feed:
				if !ok {
					conn.Close(websocket.StatusNormalClosure, "")
					return
				}
				payload, err := json.Marshal(msg)
				if err != nil {
					continue
				}
				if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
					return
				}
			}
		}
	})
	return r
}
