// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

// Fixed field-name allowlists. Membership is decided by key presence only;
// keys outside both lists are dropped and never forwarded downstream.
var (
	securityFields = []string{
		"correo",
		"clave",
		"numeroTelefono",
	}

	profileFields = []string{
		"apodo",
		"biografia",
		"urlPaginaPersonal",
		"informacionContactoPublica",
		"direccionCorrespondencia",
		"organizacion",
		"paisResidencia",
		"linkFacebook",
		"linkTwitter",
		"linkLinkedIn",
		"linkInstagram",
		"linkGithub",
		"linkOtraRed",
	}
)

// Partition splits body into the security and profile sub-payloads. The
// split is total and disjoint: every key lands in at most one subset, and
// partitioning an already-partitioned subset is a no-op.
func Partition(body Payload) (security, profile Payload) {
	security = pick(body, securityFields)
	profile = pick(body, profileFields)
	return security, profile
}

// ProfileSubset extracts only the profile-side fields of body.
func ProfileSubset(body Payload) Payload {
	return pick(body, profileFields)
}

func pick(body Payload, fields []string) Payload {
	out := Payload{}
	for _, f := range fields {
		if v, ok := body[f]; ok {
			out[f] = v
		}
	}
	return out
}
