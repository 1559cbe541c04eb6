// Package adcdklambda provides lambda-function builders with shared
// defaults and local asset bundling.
//
// Lambdas builds Python functions whose assets are staged by installing
// requirements and copying handler sources, either locally (see Bundle) or
// in the runtime's bundling container. GoFunction builds Go functions with
// reproducible build flags.
package adcdklambda
