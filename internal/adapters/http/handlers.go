package web

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"

	"presenca/internal/adapters/http/middleware"
	"presenca/internal/application/orchestrators"
	"presenca/internal/application/projections"
	attendanceDomain "presenca/internal/domain/attendance"
	memberDomain "presenca/internal/domain/member"
	userDomain "presenca/internal/domain/user"
)

// Templates are compiled into the binary so the server runs from any
// working directory.
//
//go:embed templates
var templatesFS embed.FS

// internalError logs the real error and returns a generic message to the
// client, so internal details never leak.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// registerRoutes wires every route of the app. Protected routes go through
// RequireAuth, which short-circuits unauthenticated callers to /login.
func registerRoutes(mux *http.ServeMux) {
	gated := func(h http.HandlerFunc) http.Handler { return middleware.RequireAuth(h) }

	mux.HandleFunc("/{$}", handleLogin)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/register", handleRegister)
	mux.HandleFunc("/logout", handleLogout)

	mux.Handle("/dashboard", gated(handleDashboard))
	mux.Handle("/cadastrar_jovem", gated(handleCreateMember))
	mux.Handle("/listar_jovens", gated(handleListMembers))
	mux.Handle("/editar_jovem/{id}", gated(handleEditMember))
	mux.Handle("/excluir_jovem/{id}", gated(handleDeleteMember))
	mux.Handle("/registrar_presenca", gated(handleRecordDay))
	mux.Handle("/consultar_presencas", gated(handleListPresence))
	mux.Handle("/editar_presenca/{date}", gated(handleEditDay))
	mux.Handle("/excluir_dia/{date}", gated(handleDeleteDay))
}

// renderTemplate renders a page inside the layout, injecting the session
// name, the CSRF token, and any pending flash notice.
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	name := ""
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		name = sess.Name
	}

	funcMap := template.FuncMap{
		"currentName": func() string { return name },
		"isLoggedIn":  func() bool { return name != "" },
		"csrfToken":   func() string { return csrf.Token(r) },
	}

	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.PopFlash(w, r)
	}

	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templatesFS, "templates/layout.html", "templates/"+templateName)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		internalError(w, err)
	}
}

// handleLogin handles GET (form) and POST (authenticate) for / and /login.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// Already logged in? Straight to the dashboard.
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", nil)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Email:    r.FormValue("email"),
			Password: r.FormValue("senha"),
		}
		deps := orchestrators.LoginDeps{UserStore: stores.UserStore}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			renderTemplate(w, r, "login.html", map[string]any{
				"Error": "E-mail ou senha incorretos!",
			})
			return
		}

		token, err := sessions.Create(result.UserID, result.Name, result.Email)
		if err != nil {
			internalError(w, err)
			return
		}

		middleware.SetSessionCookie(w, token)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleRegister handles GET (form) and POST (create user) for /register.
func handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "register.html", nil)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.RegisterUserInput{
			Name:     r.FormValue("nome"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("senha"),
		}
		deps := orchestrators.RegisterUserDeps{
			UserStore:   stores.UserStore,
			EmailSender: emailSender,
		}

		if _, err := orchestrators.ExecuteRegisterUser(r.Context(), input, deps); err != nil {
			switch {
			case errors.Is(err, userDomain.ErrDuplicateEmail):
				renderTemplate(w, r, "register.html", map[string]any{
					"Error": "E-mail já cadastrado!",
				})
			case errors.Is(err, userDomain.ErrEmptyName),
				errors.Is(err, userDomain.ErrEmptyEmail),
				errors.Is(err, userDomain.ErrInvalidEmail),
				errors.Is(err, userDomain.ErrEmptyPassword):
				renderTemplate(w, r, "register.html", map[string]any{
					"Error": "Preencha nome, e-mail e senha.",
				})
			default:
				internalError(w, err)
			}
			return
		}

		middleware.SetFlash(w, "Cadastro realizado com sucesso!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles GET /logout.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		sessions.Delete(cookie.Value)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleDashboard handles GET /dashboard.
func handleDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMemberList(r.Context(), projections.GetMemberListDeps{
		MemberStore: stores.MemberStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Members": result.Members,
	})
}

// handleCreateMember handles GET (form) and POST (create) for /cadastrar_jovem.
func handleCreateMember(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "cadastrar_jovem.html", nil)
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.CreateMemberInput{
			Name:      r.FormValue("nome"),
			Phone:     r.FormValue("telefone"),
			Email:     r.FormValue("email"),
			Address:   r.FormValue("endereco"),
			BirthDate: r.FormValue("data_nascimento"),
		}
		deps := orchestrators.CreateMemberDeps{MemberStore: stores.MemberStore}

		if _, err := orchestrators.ExecuteCreateMember(r.Context(), input, deps); err != nil {
			if errors.Is(err, memberDomain.ErrEmptyName) {
				renderTemplate(w, r, "cadastrar_jovem.html", map[string]any{
					"Error": "O nome é obrigatório.",
				})
				return
			}
			internalError(w, err)
			return
		}

		middleware.SetFlash(w, "Jovem cadastrado com sucesso!")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleListMembers handles GET /listar_jovens.
func handleListMembers(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetMemberList(r.Context(), projections.GetMemberListDeps{
		MemberStore: stores.MemberStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "listar_jovens.html", map[string]any{
		"Members": result.Members,
	})
}

// handleEditMember handles GET (form) and POST (update) for /editar_jovem/{id}.
func handleEditMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if r.Method == "GET" {
		m, err := stores.MemberStore.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, memberDomain.ErrNotFound) {
				middleware.SetFlash(w, "Jovem não encontrado!")
				http.Redirect(w, r, "/listar_jovens", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "editar_jovem.html", map[string]any{
			"Member": m,
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.UpdateMemberInput{
			ID:        id,
			Name:      r.FormValue("nome"),
			Phone:     r.FormValue("telefone"),
			Email:     r.FormValue("email"),
			Address:   r.FormValue("endereco"),
			BirthDate: r.FormValue("data_nascimento"),
		}
		deps := orchestrators.UpdateMemberDeps{MemberStore: stores.MemberStore}

		if _, err := orchestrators.ExecuteUpdateMember(r.Context(), input, deps); err != nil {
			if errors.Is(err, memberDomain.ErrNotFound) {
				middleware.SetFlash(w, "Jovem não encontrado!")
				http.Redirect(w, r, "/listar_jovens", http.StatusSeeOther)
				return
			}
			if errors.Is(err, memberDomain.ErrEmptyName) {
				middleware.SetFlash(w, "O nome é obrigatório.")
				http.Redirect(w, r, "/editar_jovem/"+id, http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}

		middleware.SetFlash(w, "Jovem atualizado com sucesso!")
		http.Redirect(w, r, "/listar_jovens", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleDeleteMember handles GET /excluir_jovem/{id}. Deleting a missing id
// is a quiet no-op; attendance records cascade with the member.
func handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	deleted, err := orchestrators.ExecuteDeleteMember(r.Context(), id, orchestrators.DeleteMemberDeps{
		MemberStore: stores.MemberStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	if deleted {
		middleware.SetFlash(w, "Jovem excluído com sucesso!")
	}
	http.Redirect(w, r, "/listar_jovens", http.StatusSeeOther)
}

// handleRecordDay handles GET (roster form) and POST (recordDay) for
// /registrar_presenca.
func handleRecordDay(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		result, err := projections.QueryGetMemberList(r.Context(), projections.GetMemberListDeps{
			MemberStore: stores.MemberStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "registrar_presenca.html", map[string]any{
			"Members": result.Members,
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.RecordDayInput{
			Date:       r.FormValue("data"),
			PresentIDs: presentIDSet(r.Form["presentes"]),
		}
		deps := orchestrators.RecordDayDeps{
			MemberStore:     stores.MemberStore,
			AttendanceStore: stores.AttendanceStore,
		}

		if err := orchestrators.ExecuteRecordDay(r.Context(), input, deps); err != nil {
			if errors.Is(err, attendanceDomain.ErrInvalidDate) {
				middleware.SetFlash(w, "Data inválida!")
				http.Redirect(w, r, "/registrar_presenca", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}

		middleware.SetFlash(w, "Presenças registradas com sucesso!")
		http.Redirect(w, r, "/consultar_presencas", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleListPresence handles GET /consultar_presencas.
func handleListPresence(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetPresenceByDay(r.Context(), projections.GetPresenceByDayDeps{
		AttendanceStore: stores.AttendanceStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderTemplate(w, r, "consultar_presencas.html", map[string]any{
		"Days": result.Days,
	})
}

// handleEditDay handles GET (editable roster) and POST (editDay) for
// /editar_presenca/{date}.
func handleEditDay(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")

	if r.Method == "GET" {
		result, err := projections.QueryGetDayRoster(r.Context(), projections.GetDayRosterQuery{Date: date}, projections.GetDayRosterDeps{
			MemberStore:     stores.MemberStore,
			AttendanceStore: stores.AttendanceStore,
		})
		if err != nil {
			if errors.Is(err, attendanceDomain.ErrInvalidDate) {
				middleware.SetFlash(w, "Data inválida!")
				http.Redirect(w, r, "/consultar_presencas", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}
		renderTemplate(w, r, "editar_presenca.html", map[string]any{
			"Roster": result,
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.EditDayInput{
			Date:       date,
			PresentIDs: presentIDSet(r.Form["presentes"]),
		}
		deps := orchestrators.EditDayDeps{
			MemberStore:     stores.MemberStore,
			AttendanceStore: stores.AttendanceStore,
		}

		if err := orchestrators.ExecuteEditDay(r.Context(), input, deps); err != nil {
			if errors.Is(err, attendanceDomain.ErrInvalidDate) {
				middleware.SetFlash(w, "Data inválida!")
				http.Redirect(w, r, "/consultar_presencas", http.StatusSeeOther)
				return
			}
			internalError(w, err)
			return
		}

		middleware.SetFlash(w, "Presenças atualizadas com sucesso!")
		http.Redirect(w, r, "/consultar_presencas", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleDeleteDay handles POST /excluir_dia/{date}.
func handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	date := r.PathValue("date")

	n, err := orchestrators.ExecuteDeleteDay(r.Context(), date, orchestrators.DeleteDayDeps{
		AttendanceStore: stores.AttendanceStore,
	})
	if err != nil {
		if errors.Is(err, attendanceDomain.ErrInvalidDate) {
			middleware.SetFlash(w, "Data inválida!")
			http.Redirect(w, r, "/consultar_presencas", http.StatusSeeOther)
			return
		}
		internalError(w, err)
		return
	}

	if n > 0 {
		middleware.SetFlash(w, "Presenças do dia excluídas!")
	}
	http.Redirect(w, r, "/consultar_presencas", http.StatusSeeOther)
}

// presentIDSet converts the submitted checkbox values into a lookup set.
func presentIDSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
