package initwizard

type Result struct {
	ProjectIdent  string
	PrimaryRegion string
	Environments  []string
}

func DefaultResult(defaultIdent string) Result {
	return Result{
		ProjectIdent:  defaultIdent,
		PrimaryRegion: "eu-central-1",
		Environments:  []string{"dev"},
	}
}
