package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"rinkside/internal/adapters/http/middleware"
	postStore "rinkside/internal/adapters/storage/post"
	"rinkside/internal/application/orchestrators"
	"rinkside/internal/application/projections"
	memberDomain "rinkside/internal/domain/member"
	paymentDomain "rinkside/internal/domain/payment"
	postDomain "rinkside/internal/domain/post"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/login", handleLogin)
	mux.HandleFunc("/api/logout", handleLogout)
	mux.HandleFunc("/api/me", handleMe)

	mux.HandleFunc("/api/members", handleMembers)
	mux.HandleFunc("/api/member", handleMember)
	mux.HandleFunc("/api/member/attendance", handleMemberAttendance)
	mux.HandleFunc("/api/member/payments", handleMemberPayments)

	mux.HandleFunc("/api/sessions", handleSessions)
	mux.HandleFunc("/api/session", handleSession)
	mux.HandleFunc("/api/session/attendance", handleSessionAttendance)

	mux.HandleFunc("/api/reports/attendance", handleAttendanceReport)

	mux.HandleFunc("/api/payments/charge", handleChargePayment)
	mux.HandleFunc("/api/billing/summary", handleBillingSummary)
	mux.HandleFunc("/api/billing/reminders", handleSendReminders)

	mux.HandleFunc("/api/posts", handlePosts)
	mux.HandleFunc("/api/post", handlePost)
	mux.HandleFunc("/api/post/publish", handlePublishPost)
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// requireAdmin writes an error response and returns false unless the request
// carries an admin (or debug) session.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	if !middleware.IsAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// requireSession writes an error response unless the request is authenticated.
func requireSession(w http.ResponseWriter, r *http.Request) (middleware.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return sess, ok
}

// handleLogin handles POST /api/login
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var input orchestrators.LoginInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{
		MemberStore: stores.MemberStore,
	})
	if err != nil {
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := sessions.Create(result.MemberID, result.Email, result.Role, result.DebugMode)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	respondJSON(w, http.StatusOK, result)
}

// handleLogout handles POST /api/logout
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if token, ok := middleware.SessionToken(r); ok {
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// handleMe handles GET /api/me
func handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"member_id":  sess.MemberID,
		"email":      sess.Email,
		"role":       sess.Role,
		"debug_mode": sess.DebugMode,
	})
}

// handleMembers handles GET (roster) and POST (register) for /api/members
func handleMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		if !requireAdmin(w, r) {
			return
		}
		query := projections.GetMemberRosterQuery{
			Role:          r.URL.Query().Get("role"),
			PaymentStatus: r.URL.Query().Get("payment_status"),
		}
		if limit := r.URL.Query().Get("limit"); limit != "" {
			query.Limit, _ = strconv.Atoi(limit)
		}
		if offset := r.URL.Query().Get("offset"); offset != "" {
			query.Offset, _ = strconv.Atoi(offset)
		}

		result, err := projections.QueryGetMemberRoster(ctx, query, projections.GetMemberRosterDeps{
			MemberStore:     stores.MemberStore,
			AttendanceStore: stores.AttendanceStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
		return
	}

	if r.Method == "POST" {
		// Registration is open: new skaters sign themselves up. Only admins
		// may assign a non-default role.
		var input orchestrators.RegisterMemberInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if input.Role != "" && input.Role != memberDomain.RoleMember && !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		result, err := orchestrators.ExecuteRegisterMember(ctx, input, orchestrators.RegisterMemberDeps{
			MemberStore: stores.MemberStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusCreated, result.Member)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMember handles GET and PATCH for /api/member?id=
func handleMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	// Members see themselves; admins see everyone.
	if sess.MemberID != id && !middleware.IsAdmin(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if r.Method == "GET" {
		m, err := stores.MemberStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "member not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, m)
		return
	}

	if r.Method == "PATCH" {
		var input orchestrators.UpdateMemberInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		input.MemberID = id
		if input.Role != nil && !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		m, err := orchestrators.ExecuteUpdateMember(ctx, input, orchestrators.UpdateMemberDeps{
			MemberStore: stores.MemberStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusOK, m)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMemberAttendance handles GET /api/member/attendance?member_id=
func handleMemberAttendance(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	memberID := r.URL.Query().Get("member_id")
	if memberID == "" {
		http.Error(w, "member_id is required", http.StatusBadRequest)
		return
	}
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	if sess.MemberID != memberID && !middleware.IsAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	result, err := projections.QueryGetMemberAttendance(r.Context(),
		projections.GetMemberAttendanceQuery{MemberID: memberID},
		projections.GetMemberAttendanceDeps{
			MemberStore:     stores.MemberStore,
			AttendanceStore: stores.AttendanceStore,
		})
	if err != nil {
		http.Error(w, "member not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleMemberPayments handles GET /api/member/payments?member_id=
func handleMemberPayments(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	memberID := r.URL.Query().Get("member_id")
	if memberID == "" {
		http.Error(w, "member_id is required", http.StatusBadRequest)
		return
	}
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	if sess.MemberID != memberID && !middleware.IsAdmin(r.Context()) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	result, err := projections.QueryGetPaymentHistory(r.Context(),
		projections.GetPaymentHistoryQuery{MemberID: memberID},
		projections.GetPaymentHistoryDeps{
			MemberStore:  stores.MemberStore,
			PaymentStore: stores.PaymentStore,
		})
	if err != nil {
		http.Error(w, "member not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleSessions handles GET (schedule) and POST (create) for /api/sessions
func handleSessions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		query := projections.GetScheduleQuery{}
		if limit := r.URL.Query().Get("recent_limit"); limit != "" {
			query.RecentLimit, _ = strconv.Atoi(limit)
		}
		result, err := projections.QueryGetSchedule(ctx, query, projections.GetScheduleDeps{
			SessionStore: stores.SessionStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
		return
	}

	if r.Method == "POST" {
		if !requireAdmin(w, r) {
			return
		}
		var input orchestrators.CreateSessionInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		result, err := orchestrators.ExecuteCreateSession(ctx, input, orchestrators.CreateSessionDeps{
			SessionStore: stores.SessionStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusCreated, result.Session)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleSession handles GET, PATCH and DELETE for /api/session?id=
func handleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "GET" {
		s, err := stores.SessionStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, s)
		return
	}

	if !requireAdmin(w, r) {
		return
	}

	if r.Method == "PATCH" {
		var input orchestrators.UpdateSessionInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		input.SessionID = id
		s, err := orchestrators.ExecuteUpdateSession(ctx, input, orchestrators.UpdateSessionDeps{
			SessionStore: stores.SessionStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusOK, s)
		return
	}

	if r.Method == "DELETE" {
		err := orchestrators.ExecuteDeleteSession(ctx, orchestrators.DeleteSessionInput{SessionID: id},
			orchestrators.DeleteSessionDeps{
				SessionStore:    stores.SessionStore,
				AttendanceStore: stores.AttendanceStore,
			})
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleSessionAttendance handles the attendance sheet for one session:
// GET /api/session/attendance?session_id=   the sheet with totals
// POST                                      mark one member
// PUT                                       replace the whole sheet
func handleSessionAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		sessionID := r.URL.Query().Get("session_id")
		if sessionID == "" {
			http.Error(w, "session_id is required", http.StatusBadRequest)
			return
		}
		if _, ok := requireSession(w, r); !ok {
			return
		}
		result, err := projections.QueryGetSessionAttendance(ctx,
			projections.GetSessionAttendanceQuery{SessionID: sessionID},
			projections.GetSessionAttendanceDeps{
				SessionStore:    stores.SessionStore,
				AttendanceStore: stores.AttendanceStore,
			})
		if err != nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, result)
		return
	}

	if !requireAdmin(w, r) {
		return
	}

	deps := orchestrators.TakeAttendanceDeps{
		SessionStore:    stores.SessionStore,
		MemberStore:     stores.MemberStore,
		AttendanceStore: stores.AttendanceStore,
	}

	if r.Method == "POST" {
		var input orchestrators.TakeAttendanceInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := orchestrators.ExecuteTakeAttendance(ctx, input, deps); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method == "PUT" {
		var input orchestrators.BulkTakeAttendanceInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := orchestrators.ExecuteBulkTakeAttendance(ctx, input, deps); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAttendanceReport handles GET /api/reports/attendance?start=&end=
func handleAttendanceReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		http.Error(w, "start and end are required", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetAttendanceReport(r.Context(),
		projections.GetAttendanceReportQuery{StartDate: start, EndDate: end},
		projections.GetAttendanceReportDeps{
			SessionStore:    stores.SessionStore,
			AttendanceStore: stores.AttendanceStore,
		})
	if err != nil {
		internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleChargePayment handles POST /api/payments/charge
func handleChargePayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var input orchestrators.ChargeMemberInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	// Members pay for themselves; admins may charge anyone.
	if input.MemberID == "" || !middleware.IsAdmin(r.Context()) {
		input.MemberID = sess.MemberID
	}

	result, err := orchestrators.ExecuteChargeMember(r.Context(), input, orchestrators.ChargeMemberDeps{
		MemberStore:  stores.MemberStore,
		PaymentStore: stores.PaymentStore,
		Gateway:      paymentGateway,
		EmailSender:  emailSender,
	})
	if err != nil {
		if errors.Is(err, paymentDomain.ErrEmptyMember) ||
			errors.Is(err, paymentDomain.ErrInvalidAmount) ||
			errors.Is(err, paymentDomain.ErrInvalidMonth) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}
	if !result.Authorized {
		respondJSON(w, http.StatusPaymentRequired, map[string]any{
			"authorized": false,
			"reason":     result.DeclineReason,
		})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleBillingSummary handles GET /api/billing/summary?month=&year=
func handleBillingSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "month must be 1-12", http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year is required", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetBillingSummary(r.Context(),
		projections.GetBillingSummaryQuery{Month: month, Year: year},
		projections.GetBillingSummaryDeps{
			PaymentStore: stores.PaymentStore,
			MemberStore:  stores.MemberStore,
		})
	if err != nil {
		internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// handleSendReminders handles POST /api/billing/reminders
func handleSendReminders(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	if emailSender == nil {
		http.Error(w, "email sending is not configured", http.StatusServiceUnavailable)
		return
	}

	var input orchestrators.SendPaymentRemindersInput
	if err := strictDecode(r, &input); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := orchestrators.ExecuteSendPaymentReminders(r.Context(), input,
		orchestrators.SendPaymentRemindersDeps{
			MemberStore: stores.MemberStore,
			EmailSender: emailSender,
		})
	if err != nil {
		internalError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// postView is a Post plus its markdown rendered to HTML.
type postView struct {
	postDomain.Post
	HTML string `json:",omitempty"`
}

func renderMarkdown(md string) string {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return ""
	}
	return buf.String()
}

// handlePosts handles GET (list) and POST (create) for /api/posts
func handlePosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		filter := postStore.ListFilter{
			Status:   r.URL.Query().Get("status"),
			Category: r.URL.Query().Get("category"),
			Featured: r.URL.Query().Get("featured") == "true",
		}
		// Non-admins only ever see published posts.
		if !middleware.IsAdmin(ctx) {
			filter.Status = postDomain.StatusPublished
		}

		posts, err := stores.PostStore.List(ctx, filter)
		if err != nil {
			internalError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, posts)
		return
	}

	if r.Method == "POST" {
		if !requireAdmin(w, r) {
			return
		}
		var input orchestrators.CreatePostInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		p, err := orchestrators.ExecuteCreatePost(ctx, input, orchestrators.CreatePostDeps{
			PostStore: stores.PostStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusCreated, p)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePost handles GET, PATCH and DELETE for /api/post?id=
func handlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if r.Method == "GET" {
		p, err := stores.PostStore.GetByID(ctx, id)
		if err != nil {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		if !p.IsPublished() && !middleware.IsAdmin(ctx) {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		// Reading a published post counts as a view.
		if p.IsPublished() {
			if err := stores.PostStore.IncrementViews(ctx, id); err != nil {
				slog.Warn("post_event", "event", "view_count_failed", "post_id", id, "error", err)
			} else {
				p.Views++
			}
		}
		respondJSON(w, http.StatusOK, postView{Post: p, HTML: renderMarkdown(p.Content)})
		return
	}

	if !requireAdmin(w, r) {
		return
	}

	if r.Method == "PATCH" {
		var input orchestrators.UpdatePostInput
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		input.PostID = id
		p, err := orchestrators.ExecuteUpdatePost(ctx, input, orchestrators.UpdatePostDeps{
			PostStore: stores.PostStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respondJSON(w, http.StatusOK, p)
		return
	}

	if r.Method == "DELETE" {
		if err := orchestrators.ExecuteDeletePost(ctx, orchestrators.DeletePostInput{PostID: id},
			orchestrators.DeletePostDeps{PostStore: stores.PostStore}); err != nil {
			internalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePublishPost handles POST /api/post/publish?id=
func handlePublishPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !requireAdmin(w, r) {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	p, err := orchestrators.ExecutePublishPost(r.Context(), orchestrators.PublishPostInput{PostID: id},
		orchestrators.UpdatePostDeps{PostStore: stores.PostStore})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, p)
}
