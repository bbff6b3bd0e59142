// Copyright 2025 The Rivaas Authors
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

package typedvalidation_test

import (
	"errors"
	"fmt"

	typedvalidation "github.com/Workpop/typed-validation"
)

func ExampleValidator_Validate() {
	v := typedvalidation.MustNew(`
		input Signup {
			email: EmailType
			phone: PhoneType
			age: Int
		}
	`)

	err := v.Validate(map[string]any{
		"email": "john@",
		"phone": "(909) 456-4319",
		"age":   30,
	})

	var verr *typedvalidation.Error
	if errors.As(err, &verr) {
		for _, fe := range verr.Fields {
			fmt.Println(fe.Name, fe.Code, fe.Message)
		}
	}
	// Output:
	// email type email must be a EmailType
}

func ExampleValidator_ValidateOne() {
	v := typedvalidation.MustNew(`input Profile { title: String }`)

	if err := v.ValidateOne(map[string]any{}, "title"); err != nil {
		msg, _ := v.KeyErrorMessage("title")
		fmt.Println(msg)
	}
	// Output:
	// title is required
}

func ExampleValidator_Clean() {
	v := typedvalidation.MustNew(`
		type User { id: String, name: Int }
		input Post { title: User }
	`)

	rec := v.Clean(map[string]any{
		"title": map[string]any{"id": "Yo!", "name": 1},
		"foo":   "bar",
	})

	fmt.Println(len(rec), v.Validate(rec))
	// Output:
	// 1 <nil>
}

func ExampleWithCustomMessages() {
	v := typedvalidation.MustNew(`input Contact { phone: PhoneType }`,
		typedvalidation.WithCustomMessages(map[string]string{
			"phone": "Please enter a ten digit phone number",
		}),
	)

	_ = v.Validate(map[string]any{"phone": "456-4319"})
	for _, fe := range v.InvalidKeys() {
		fmt.Println(fe.Message)
	}
	// Output:
	// Please enter a ten digit phone number
}
