package normalizer

import "strings"

// Artifact is the type of Rails source file an identifier names.
type Artifact int

const (
	// ArtifactModelConcern is a model or model concern under models/concerns/.
	ArtifactModelConcern Artifact = iota
	// ArtifactController is a controller under controllers/.
	ArtifactController
	// ArtifactResponder is a responder under responders/.
	ArtifactResponder
	// ArtifactInteractor is an interactor under interactors/.
	ArtifactInteractor
)

// Classify determines the artifact type of a final joined identifier by
// exact suffix matching:
//
//	"..._controller" -> ArtifactController
//	"..._responder"  -> ArtifactResponder
//	"...interactor"  -> ArtifactInteractor
//
// Anything else, bare or namespaced, is ArtifactModelConcern, so a plain
// model's file path is "models/concerns/name.rb".
func Classify(identifier string) Artifact {
	switch {
	case strings.HasSuffix(identifier, controllerSuffix):
		return ArtifactController
	case strings.HasSuffix(identifier, responderSuffix):
		return ArtifactResponder
	case strings.HasSuffix(identifier, "interactor"):
		return ArtifactInteractor
	default:
		return ArtifactModelConcern
	}
}

// Dir returns the source directory prefix for the artifact type.
func (a Artifact) Dir() string {
	switch a {
	case ArtifactController:
		return "controllers"
	case ArtifactResponder:
		return "responders"
	case ArtifactInteractor:
		return "interactors"
	default:
		return "models/concerns"
	}
}

// String returns a lower-case name for the artifact type.
func (a Artifact) String() string {
	switch a {
	case ArtifactController:
		return "controller"
	case ArtifactResponder:
		return "responder"
	case ArtifactInteractor:
		return "interactor"
	default:
		return "model_concern"
	}
}
