package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// userPayload is the decoded body for user creation.
type userPayload struct {
	Username string
}

// exercisePayload is the decoded body for exercise creation. Fields stay
// textual; numeric coercion happens in the domain layer.
type exercisePayload struct {
	Description string
	Duration    string
	Date        string
}

func decodeUserPayload(r *http.Request) (userPayload, error) {
	if isJSONRequest(r) {
		var body struct {
			Username looseString `json:"username"`
		}
		if err := decodeJSONBody(r, &body); err != nil {
			return userPayload{}, err
		}
		return userPayload{Username: string(body.Username)}, nil
	}

	if err := r.ParseForm(); err != nil {
		return userPayload{}, err
	}
	return userPayload{Username: r.PostFormValue("username")}, nil
}

func decodeExercisePayload(r *http.Request) (exercisePayload, error) {
	if isJSONRequest(r) {
		var body struct {
			Description looseString `json:"description"`
			Duration    looseString `json:"duration"`
			Date        looseString `json:"date"`
		}
		if err := decodeJSONBody(r, &body); err != nil {
			return exercisePayload{}, err
		}
		return exercisePayload{
			Description: string(body.Description),
			Duration:    string(body.Duration),
			Date:        string(body.Date),
		}, nil
	}

	if err := r.ParseForm(); err != nil {
		return exercisePayload{}, err
	}
	return exercisePayload{
		Description: r.PostFormValue("description"),
		Duration:    r.PostFormValue("duration"),
		Date:        r.PostFormValue("date"),
	}, nil
}

func isJSONRequest(r *http.Request) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

// decodeJSONBody tolerates an empty body, mirroring the permissive body
// parsing the API launched with.
func decodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// looseString accepts JSON strings, numbers and null, so a body like
// {"duration": 30} decodes the same as {"duration": "30"}.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = looseString(num.String())
		return nil
	}

	return fmt.Errorf("expected string or number, got %s", data)
}
