package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zaptest"

	"github.com/ytget/meal-finder/internal/mealdb"
)

const teriyakiPayload = `{"meals":[{
	"idMeal":"52772",
	"strMeal":"Teriyaki Chicken Casserole",
	"strCategory":"Chicken",
	"strArea":"Japanese",
	"strInstructions":"Preheat oven to 350 F.",
	"strYoutube":"https://www.youtube.com/watch?v=4aZr5hZXP_s",
	"strSource":null,
	"strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
	"strIngredient2":"","strMeasure2":"",
	"strIngredient3":"water","strMeasure3":"1/2 cup"
}]}`

// recordingOpener remembers every URL it was asked to open
type recordingOpener struct {
	opened []string
	err    error
}

func (r *recordingOpener) OpenURL(u *url.URL) error {
	r.opened = append(r.opened, u.String())
	return r.err
}

func newMealServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get(mealdb.LookupParam) {
		case "52772":
			_, _ = w.Write([]byte(teriyakiPayload))
		case "500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			_, _ = w.Write([]byte(`{"meals":null}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestRuntime(t *testing.T, baseURL string) (*Runtime, *recordingOpener) {
	t.Helper()
	opener := &recordingOpener{}
	rt := NewRuntime()
	rt.ClientConfig = mealdb.Config{BaseURL: baseURL}
	rt.Opener = opener
	rt.Log = zaptest.NewLogger(t)
	return rt, opener
}

// execute runs cmd with args and returns stdout and stderr
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
