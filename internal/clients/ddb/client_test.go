package ddb_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ddb-importer/internal/clients/ddb"
	ddbentities "github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	calls    atomic.Int32
	lastBody map[string]any
	lastPath string
	status   int
	reply    map[string]any
}

func (s *ClientTestSuite) SetupTest() {
	s.calls.Store(0)
	s.lastBody = nil
	s.status = http.StatusOK
	s.reply = map[string]any{"success": true, "message": "", "data": []any{}}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		s.lastPath = r.URL.Path
		s.Equal(http.MethodPost, r.Method)
		s.Equal("application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		s.NoError(json.NewDecoder(r.Body).Decode(&body))
		s.lastBody = body

		w.WriteHeader(s.status)
		_ = json.NewEncoder(w).Encode(s.reply)
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) newClient(debugDir string) ddb.Client {
	c, err := ddb.New(&ddb.Config{
		Endpoint: s.server.URL + "/",
		Cobalt:   "cobalt-cookie",
		BetaKey:  "beta",
		DebugDir: debugDir,
	})
	s.Require().NoError(err)
	return c
}

func (s *ClientTestSuite) TestNewValidates() {
	_, err := ddb.New(&ddb.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Endpoint")
	s.Contains(err.Error(), "Cobalt")

	_, err = ddb.New(nil)
	s.Require().Error(err)
}

func (s *ClientTestSuite) TestListEncounters() {
	s.reply["data"] = []any{
		map[string]any{
			"id":         "enc-1",
			"name":       "Goblin Ambush",
			"difficulty": 2,
			"campaign":   map[string]any{"id": 7, "name": "Lost Mine"},
			"monsters":   []any{map[string]any{"id": 16907, "quantity": 4}},
			"players":    []any{map[string]any{"id": 99, "name": "Ada", "hidden": false}},
		},
	}

	encounters, err := s.newClient("").ListEncounters(s.T().Context())
	s.Require().NoError(err)
	s.Require().Len(encounters, 1)

	enc := encounters[0]
	s.Equal("enc-1", enc.ID)
	s.Equal(2, *enc.Difficulty)
	s.Equal(7, enc.Campaign.ID)
	s.Equal(4, enc.Monsters[0].Quantity)
	s.Equal("Ada", enc.Players[0].Name)

	s.Equal("/proxy/encounters", s.lastPath)
	s.Equal("cobalt-cookie", s.lastBody["cobalt"])
	s.Equal("beta", s.lastBody["betaKey"])
}

func (s *ClientTestSuite) TestResponsesAreCached() {
	c := s.newClient("")

	_, err := c.ListCampaigns(s.T().Context())
	s.Require().NoError(err)
	_, err = c.ListCampaigns(s.T().Context())
	s.Require().NoError(err)
	s.Equal(int32(1), s.calls.Load())

	_, err = c.ListClassSpells(s.T().Context(), &ddb.ListClassSpellsInput{ClassName: "Wizard"})
	s.Require().NoError(err)
	_, err = c.ListClassSpells(s.T().Context(), &ddb.ListClassSpellsInput{ClassName: "Cleric"})
	s.Require().NoError(err)
	s.Equal(int32(3), s.calls.Load())
}

func (s *ClientTestSuite) TestListClassSpells() {
	s.reply["data"] = []any{
		map[string]any{
			"id": 1,
			"definition": map[string]any{
				"name":  "Magic Missile",
				"level": 1,
				"range": map[string]any{"origin": "Ranged", "rangeValue": 120},
			},
		},
	}

	spells, err := s.newClient("").ListClassSpells(s.T().Context(), &ddb.ListClassSpellsInput{
		ClassName:  "Wizard",
		CampaignID: "7",
	})
	s.Require().NoError(err)
	s.Require().Len(spells, 1)

	sp := spells[0]
	s.Equal("Magic Missile", sp.Definition.Name)
	s.Equal(ddbentities.RangeOriginRanged, sp.Definition.Range.Origin)
	s.Equal("Wizard", sp.Class)
	s.Equal(ddbentities.LookupClassSpell, sp.Lookup)
	s.True(sp.Generic)

	s.Equal("/proxy/class/spells", s.lastPath)
	s.Equal("Wizard", s.lastBody["className"])
	s.Equal("7", s.lastBody["campaignId"])
}

func (s *ClientTestSuite) TestListClassSpellsRequiresClass() {
	_, err := s.newClient("").ListClassSpells(s.T().Context(), &ddb.ListClassSpellsInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(int32(0), s.calls.Load())
}

func (s *ClientTestSuite) TestAPIFailure() {
	s.reply = map[string]any{"success": false, "message": "cobalt expired"}

	c := s.newClient("")
	_, err := c.ListEncounters(s.T().Context())
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "cobalt expired")

	// failures are not cached
	_, err = c.ListEncounters(s.T().Context())
	s.Require().Error(err)
	s.Equal(int32(2), s.calls.Load())
}

func (s *ClientTestSuite) TestHTTPStatusMapping() {
	s.status = http.StatusUnauthorized

	_, err := s.newClient("").ListCampaigns(s.T().Context())
	s.Require().Error(err)
	s.True(errors.IsUnauthenticated(err))
}

func (s *ClientTestSuite) TestDebugDump() {
	dir := s.T().TempDir()
	s.reply["data"] = []any{map[string]any{"id": 3, "name": "Phandelver"}}

	_, err := s.newClient(dir).ListCampaigns(s.T().Context())
	s.Require().NoError(err)

	raw, err := os.ReadFile(filepath.Join(dir, "campaigns-raw.json"))
	s.Require().NoError(err)
	s.Contains(string(raw), "Phandelver")
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
