package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/vivastreet/backend-smoke-tests/client"
)

// field follows a path of object keys. Anything missing along the way yields Null.
func field(v ldvalue.Value, path ...string) ldvalue.Value {
	for _, key := range path {
		v = v.GetByKey(key)
	}
	return v
}

// hasField reports whether the last key of path is present, even if its value is null.
func hasField(v ldvalue.Value, path ...string) bool {
	if len(path) == 0 {
		return false
	}
	parent := field(v, path[:len(path)-1]...)
	_, ok := parent.TryGetByKey(path[len(path)-1])
	return ok
}

// truthy treats false, zero, empty strings, empty collections and null as false.
func truthy(v ldvalue.Value) bool {
	switch v.Type() {
	case ldvalue.BoolType:
		return v.BoolValue()
	case ldvalue.NumberType:
		return v.Float64Value() != 0
	case ldvalue.StringType:
		return v.StringValue() != ""
	case ldvalue.ArrayType, ldvalue.ObjectType:
		return v.Count() > 0
	default:
		return false
	}
}

func isList(v ldvalue.Value) bool {
	return v.Type() == ldvalue.ArrayType
}

// requireStatus fails the check unless the backend answered with the expected status, and
// returns the parsed response body.
func requireStatus(t *T, resp *client.Response, status int) ldvalue.Value {
	if resp == nil {
		t.Failf("No response")
	}
	if resp.StatusCode != status {
		t.Failf("Failed with status %d: %s", resp.StatusCode, resp.BodyExcerpt())
	}
	return resp.JSON()
}

// requireData fails the check unless the body is a successful envelope whose data object has
// a truthy value for key, and returns that value.
func requireData(t *T, body ldvalue.Value, key string) ldvalue.Value {
	value := field(body, "data", key)
	if !truthy(field(body, "success")) || !truthy(value) {
		t.Failf("Invalid response structure: %s", body.JSONString())
	}
	return value
}

// requireList is like requireData, but accepts an empty list.
func requireList(t *T, body ldvalue.Value, key string) ldvalue.Value {
	value := field(body, "data", key)
	if !truthy(field(body, "success")) || !isList(value) {
		t.Failf("Invalid response structure: %s", body.JSONString())
	}
	return value
}

// requireSuccess fails the check with the given prefix unless the envelope's success flag is set.
func requireSuccess(t *T, body ldvalue.Value, prefix string) {
	if !truthy(field(body, "success")) {
		t.Failf("%s: %s", prefix, body.JSONString())
	}
}
