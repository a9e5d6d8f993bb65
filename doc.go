// Package tokapit is the geometry and validation engine behind a parametric
// tokamak pit designer: a circular, annular concrete pit that houses a
// fusion reactor's cryostat, split into sectors and pierced by duct rings,
// radial ports and stairs.
//
// What is in the box?
//
//	pit/        parameter set, built-in presets, strict JSON/TOML codec
//	geometry/   tangential width → arc angle, sector and joint wedges,
//	             port/stair/duct cut-out wedges, plan layout, preview mesh
//	validate/   ordered rule set producing error/warning findings
//	export/     SVG and PDF plan, XLSX schedule, Wavefront OBJ mesh
//	cmd/pitctl  CLI: validate, layout, mesh, export, presets, watch, serve
//
// Why split it this way?
//
//   - The engine packages (pit, geometry, validate, export) are pure and
//     safe for concurrent use; they never log and never touch the network.
//   - Domain violations are data, not errors: validate.Validate always
//     returns every finding so a designer can show them all at once.
//   - Exports draw whatever they are given; the CLI and the HTTP API refuse
//     a layout with error findings unless forced.
//
// Quick ASCII plan (angles counter-clockwise from +X):
//
//	          90°
//	       .-'''-.          outer wall  r = outer_radius
//	     .'  .-.  '.        duct ring   inner < r ± w/2 < outer - wall
//	180°|   ( o )   |0°     port        wedge of width w at mid-radius
//	     '.  '-'  .'        stair       wedge of run width at mid-radius
//	       '-...-'
//	         270°
//
//	go get github.com/katalvlaran/tokapit
package tokapit
