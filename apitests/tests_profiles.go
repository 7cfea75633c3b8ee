package apitests

import (
	"net/http"
	"net/url"

	"github.com/vivastreet/backend-smoke-tests/client"
	"github.com/vivastreet/backend-smoke-tests/servicedef"
)

// ProfileFilterQuery lists profiles in Madrid by ethnicity, featured first. An empty result is
// acceptable.
const ProfileFilterQuery = "?location=Madrid&ethnicity=Europea&sortBy=featured"

const noProfileID = "No profile ID available for testing"

// DoListProfilesTests captures the first listed profile for the cases that follow. The
// filtered query is only checked if the plain listing worked.
func DoListProfilesTests(t *T) {
	session := t.Session()

	listed := t.Run("Get All Profiles", func(t *T) {
		body := requireStatus(t, t.Call(http.MethodGet, "/profiles"), http.StatusOK)
		profiles := requireList(t, body, "profiles")
		if profiles.Count() > 0 {
			session.ProfileID = profiles.GetByIndex(0).GetByKey("id")
			t.Debug("using profile %s", session.ProfileID.JSONString())
		}
		t.Pass("Retrieved %d profiles", profiles.Count())
	})
	if !listed {
		return
	}

	t.Run("Get Profiles with Filters", func(t *T) {
		resp := t.Call(http.MethodGet, "/profiles"+ProfileFilterQuery)
		if resp == nil || resp.StatusCode != http.StatusOK {
			t.Failf("Filter request failed")
		}
		if !truthy(field(resp.JSON(), "success")) {
			t.Failf("Filter response invalid")
		}
		t.Pass("Filtering and sorting working")
	})
}

func DoSingleProfileTests(t *T) {
	session := t.Session()
	t.Run("Get Single Profile", func(t *T) {
		id := session.ProfileID
		if !truthy(id) {
			t.Failf(noProfileID)
		}
		body := requireStatus(t, t.Call(http.MethodGet, "/profiles/"+url.PathEscape(valueText(id))), http.StatusOK)
		profile := requireData(t, body, "profile")
		if !field(profile, "id").Equal(id) {
			t.Failf("Wrong profile returned")
		}
		t.Pass("Profile retrieved with view increment")
	})
}

func DoUpdateProfileTests(t *T) {
	session := t.Session()
	t.Run("Update Profile", func(t *T) {
		id := session.ProfileID
		if !truthy(id) {
			t.Failf(noProfileID)
		}
		params := servicedef.UpdateProfileParams{
			Description: "Acompañante profesional y discreta en Madrid. Servicios de alta calidad.",
			Location:    "Barcelona",
			Rates: &servicedef.ProfileRates{
				Incall:  "€180/h",
				Outcall: "€220/h",
			},
		}
		resp := t.Call(http.MethodPut, "/profiles/"+url.PathEscape(valueText(id)),
			client.WithBody(params), client.WithToken(session.Model.Token))
		body := requireStatus(t, resp, http.StatusOK)
		requireSuccess(t, body, "Update failed")
		t.Pass("Profile updated successfully by model")
	})
}
