package service

// CodeGenerator produces fixed-width numeric one-time codes.
type CodeGenerator interface {
	Generate() (string, error)
}
