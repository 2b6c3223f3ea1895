/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package derive

import (
	"encoding/json"
	"testing"
)

func TestTable_MarshalJSON(t *testing.T) {
	tbl := mustDerive(t, explainFixture())

	raw, err := json.Marshal(tbl)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	// protojson does not promise a stable layout; decode before comparing.
	var got struct {
		Type       string `json:"type"`
		TypeParams []struct {
			Name       string `json:"name"`
			Constraint string `json:"constraint"`
		} `json:"type_params"`
		Variants []struct {
			Name  string `json:"name"`
			Shape string `json:"shape"`
		} `json:"variants"`
		Status []struct {
			Pattern map[string]any `json:"pattern"`
			Extract map[string]any `json:"extract"`
		} `json:"status"`
		Reason []struct {
			Pattern map[string]any `json:"pattern"`
			Extract map[string]any `json:"extract"`
		} `json:"reason"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, raw)
	}

	if got.Type != "ApiError" || len(got.TypeParams) != 1 || got.TypeParams[0].Constraint != "any" {
		t.Fatalf("identity = %q %+v", got.Type, got.TypeParams)
	}
	if len(got.Variants) != 4 || got.Variants[2].Shape != "named" {
		t.Fatalf("variants = %+v", got.Variants)
	}
	if len(got.Status) != 4 || len(got.Reason) != 4 {
		t.Fatalf("arms = %d/%d, want 4/4", len(got.Status), len(got.Reason))
	}

	first := got.Status[0]
	if first.Extract["kind"] != "literal" || first.Extract["name"] != "NotFound" || first.Extract["code"] != float64(404) {
		t.Fatalf("status[0].extract = %v", first.Extract)
	}
	up := got.Status[1]
	bind, _ := up.Pattern["bind"].(map[string]any)
	if bind["index"] != float64(0) || up.Extract["access"] != "value" {
		t.Fatalf("status[1] = %v / %v", up.Pattern, up.Extract)
	}
	last := got.Reason[3]
	if last.Pattern["default"] != true || last.Extract["kind"] != "canonical_reason" {
		t.Fatalf("reason default = %v / %v", last.Pattern, last.Extract)
	}
}

func TestTable_Proto(t *testing.T) {
	pb, err := mustDerive(t, explainFixture()).Proto()
	if err != nil {
		t.Fatalf("Proto: %v", err)
	}
	if got := pb.GetFields()["type"].GetStringValue(); got != "ApiError" {
		t.Fatalf("type = %q", got)
	}
	if n := len(pb.GetFields()["status"].GetListValue().GetValues()); n != 4 {
		t.Fatalf("status arms = %d", n)
	}
}
