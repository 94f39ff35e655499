package normalizer_test

import (
	"errors"
	"fmt"

	"github.com/erraggy/railsconst/normalizer"
	"github.com/erraggy/railsconst/rcerrors"
)

func ExampleTo() {
	for _, f := range []normalizer.Format{
		normalizer.FormatNone,
		normalizer.FormatKlass,
		normalizer.FormatFilePath,
	} {
		out, err := normalizer.To("controller_name#index", normalizer.KindResponder, f)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(out)
	}
	// Output:
	// index_responder
	// ControllerNames::IndexResponder
	// responders/controller_names/index_responder.rb
}

func ExampleModelConcern() {
	out, _ := normalizer.ModelConcern("controller_name#index-model_ones", normalizer.FormatKlass)
	fmt.Println(out)
	// Output: ControllerNames::Index::ModelOne
}

func ExampleController() {
	out, _ := normalizer.Controller("NamesController", normalizer.FormatKlassName)
	fmt.Println(out)
	// Output: Names
}

func ExamplePermit() {
	_, err := normalizer.Permit("destroy")
	fmt.Println(errors.Is(err, rcerrors.ErrInvalidAction))
	// Output: true
}

func ExampleNormalize() {
	fmt.Println(normalizer.Normalize("　　no　　　rm　　al　iz　ed　　　"))
	// Output: normalized
}
