// SPDX-License-Identifier: MIT

// Package render holds headless lab.Display implementations.
//
//   - PNG writes one frame per update: the reconstructed surface as a
//     colormapped heatmap next to a bar chart of the singular values, with
//     the Gavish–Donoho threshold drawn across it.
//   - Console prints one diagnostics row per update through a tabwriter.
//
// Colormaps (Viridis, Magma) interpolate in CIE L*a*b* via go-colorful;
// captions use the x/image basicfont face.
package render
