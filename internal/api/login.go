package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/samiksha-ambastha1205/round2-mechatron/internal/api/respond"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/auth"
	"github.com/samiksha-ambastha1205/round2-mechatron/internal/model"
)

// maxLoginBody caps the /login request body.
const maxLoginBody = 100 << 10

// MsgMalformed is returned when the body is not a JSON object of strings.
const MsgMalformed = "Malformed request body."

// LoginHandler handles POST /login.
type LoginHandler struct {
	authn auth.Authenticator
}

func NewLoginHandler(authn auth.Authenticator) *LoginHandler { return &LoginHandler{authn: authn} }

// loginRequest accepts every field name the front ends have used.
// teamId wins over agentId, which wins over identifier; codeword wins over password.
type loginRequest struct {
	TeamID     optString `json:"teamId"`
	AgentID    optString `json:"agentId"`
	Identifier optString `json:"identifier"`
	Codeword   optString `json:"codeword"`
	Password   optString `json:"password"`
}

func (in loginRequest) identifier() string {
	return firstSet(in.TeamID, in.AgentID, in.Identifier)
}

func (in loginRequest) codeword() string {
	return firstSet(in.Codeword, in.Password)
}

// optString is a JSON string (or number) that remembers whether it was present.
// null counts as absent.
type optString struct {
	set   bool
	value string
}

func (o *optString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		o.set, o.value = true, s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		o.set, o.value = true, n.String()
		return nil
	}
	return fmt.Errorf("expected string, got %s", b)
}

func firstSet(opts ...optString) string {
	for _, o := range opts {
		if o.set {
			return o.value
		}
	}
	return ""
}

// Login decides the attempt and answers 200, 400 or 401 with a {success, message} body.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)

	var in loginRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLoginBody))
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		log.Debug().Err(err).Msg("login body rejected")
		respond.WriteResult(w, http.StatusBadRequest, false, MsgMalformed)
		return
	}

	err := h.authn.Authenticate(r.Context(), in.identifier(), in.codeword())
	switch {
	case err == nil:
		log.Info().Bool("success", true).Msg("login attempt")
		respond.WriteResult(w, http.StatusOK, true, auth.MsgAuthenticated)
	case errors.Is(err, model.ErrValidation):
		log.Info().Bool("success", false).Str("reason", "validation").Msg("login attempt")
		respond.WriteResult(w, http.StatusBadRequest, false, err.Error())
	case errors.Is(err, model.ErrUnauthorized):
		log.Info().Bool("success", false).Str("reason", "credentials").Msg("login attempt")
		respond.WriteResult(w, http.StatusUnauthorized, false, err.Error())
	default:
		log.Error().Err(err).Msg("login failed")
		respond.WriteResult(w, http.StatusInternalServerError, false, http.StatusText(http.StatusInternalServerError))
	}
}
