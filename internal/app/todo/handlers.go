package todo

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/mitchellh/mapstructure"
)

func (app *App) list() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		offset, limit := parsePagination(r.URL.RawQuery, app.maxLimit)

		todos, err := app.store.List(r.Context(), offset, limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if todos == nil {
			todos = []Todo{}
		}

		app.writeJSON(w, http.StatusOK, todos)
	}
}

func (app *App) create() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		var input CreateInput
		if err := decodeBody(r, &input); err != nil || input.Description == nil {
			http.Error(w, "Bad request.", http.StatusBadRequest)
			return
		}

		todo := Todo{
			ID:          NewID(),
			Description: *input.Description,
			Completed:   false,
		}

		if err := app.store.Create(r.Context(), todo); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		app.publish(EventCreated, todo.ID, todo)

		app.writeJSON(w, http.StatusCreated, todo)
	}
}

func (app *App) update() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		var request updateRequest
		if err := decodeBody(r, &request); err != nil || request.ID == nil {
			http.Error(w, "Bad request.", http.StatusBadRequest)
			return
		}

		input := UpdateInput{
			ID:          *request.ID,
			Description: request.Description,
			Completed:   request.Completed,
		}

		if err := app.store.Update(r.Context(), input); err != nil {
			app.storeError(w, err)
			return
		}

		app.publish(EventUpdated, input.ID, input)

		app.writeJSON(w, http.StatusOK, input.ID)
	}
}

func (app *App) delete() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		id := p.ByName("id")

		if err := app.store.Delete(r.Context(), id); err != nil {
			app.storeError(w, err)
			return
		}

		app.publish(EventDeleted, id, map[string]string{"id": id})

		app.writeJSON(w, http.StatusOK, id)
	}
}

// updateRequest keeps ID as a pointer so a missing id can be told apart
// from an empty one.
type updateRequest struct {
	ID          *string `json:"id"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// decodeBody rejects anything but a single JSON value.
func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, v)
}

var paginationKeys = []string{"offset", "limit"}

// decimalHook only accepts base 10 integers, "010" is 10 and "0x10" fails.
func decimalHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int64 {
		return data, nil
	}

	return strconv.ParseInt(data.(string), 10, 64)
}

// parsePagination falls back to the defaults as a whole when any part of
// the query cannot be decoded, including empty values and repeated keys.
func parsePagination(rawQuery string, maxLimit int64) (offset, limit int64) {
	offset, limit = DefaultOffset, DefaultLimit

	defer func() {
		if maxLimit > 0 && limit > maxLimit {
			limit = maxLimit
		}
	}()

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return
	}

	for _, key := range paginationKeys {
		if len(values[key]) > 1 {
			return
		}
	}

	input := make(map[string]any, len(values))
	for key := range values {
		input[key] = values.Get(key)
	}

	var pagination Pagination
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(decimalHook),
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
		Result: &pagination,
	})
	if err != nil {
		return
	}

	if err := decoder.Decode(input); err != nil {
		return
	}

	if pagination.Offset != nil {
		offset = *pagination.Offset
	}

	if pagination.Limit != nil {
		limit = *pagination.Limit
	}

	return
}

func (app *App) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "Not found.", http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (app *App) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		app.logger.Log("msg", "write response", "err", err)
	}
}
