// Package loader provides the plugin-like feature loading system.
//
// Features implement the Feature interface and are registered on a Manager,
// which initializes the enabled ones and wires their routes into the Fiber
// application. This keeps modules like 'recon' developed and tested in
// isolation from the server setup.
package loader
