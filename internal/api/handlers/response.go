package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// maxBodySize ограничение размера тела запроса
const maxBodySize = 1 << 20

const msgInternalError = "error interno del servidor"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"` // Нарушенные правила записи
}

// RespondJSON пишет JSON ответ с кодом status
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondNoContent 204 без тела
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError пишет ошибку с произвольным кодом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

// RespondValidationErrors 422 со списком нарушенных правил
func RespondValidationErrors(w http.ResponseWriter, message string, errs []string) {
	RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Errors:  errs,
	})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondServiceUnavailable используется, когда доступность нельзя проверить
func RespondServiceUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusServiceUnavailable, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// PathUUID читает UUID из переменной пути mux
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return uuid.Nil, fmt.Errorf("missing path variable %s", name)
	}
	return uuid.Parse(raw)
}

// QueryUUID читает необязательный UUID из query параметра
func QueryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseDate разбирает "YYYY-MM-DD" как полночь в часовом поясе заведения
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, value, loc)
}

// ParseStartAt собирает момент начала из даты "YYYY-MM-DD" и времени "HH:MM"
// Пустые дата и время дают нулевое время, его отклонит валидатор записи
func ParseStartAt(date, at string, loc *time.Location) (time.Time, error) {
	if date == "" && at == "" {
		return time.Time{}, nil
	}

	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	ts, err := types.NewTimeStringFromString(at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", at, err)
	}
	// "24:00" допустим только как конец интервала
	if ts.Minutes() >= 24*60 {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", at, types.ErrTimeOverflow)
	}

	return ts.On(day, loc), nil
}
