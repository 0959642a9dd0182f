// Package lvmapper builds Mapper graphs: compact topological summaries of
// point clouds.
//
// 🚀 What is a Mapper graph?
//
//	A point cloud is pushed through four stages:
//		• Filter: a lens maps every point to a low-dimensional value
//		• Cover: overlapping hyper-rectangles tile the lens image
//		• Cluster: the points of each region are clustered independently
//		• Graph: every cluster becomes a node; nodes sharing points are linked,
//		  weighted by the number of shared points
//
// ✨ Why lvmapper?
//
//   - Deterministic: identical inputs give identical graphs for any worker count
//   - Concurrent: regions are clustered in parallel, bounded by a worker limit
//   - Pluggable: Filter, Cover and Clusterer are small interfaces
//   - Operable: viper config, zap logs, JSON/YAML export, CLI and HTTP surface
//
// Packages:
//
//	pointcloud/ - the ordered point sequence and CSV I/O
//	filter/     - lenses: projection, norms, centroid distance, eccentricity, PCA
//	cover/      - the cubical cover and point-to-region membership
//	cluster/    - DBSCAN, single linkage, trivial
//	mapper/     - the pipeline (fork/join clustering, edge pass)
//	core/       - thread-safe Mapper graph store
//	bfs/        - traversal and connected components
//	matrix/     - dense linear algebra and distance metrics
//	builder/    - seeded synthetic clouds (circle, blobs, line)
//	export/     - renderer-friendly JSON/YAML documents
//	config/     - file/env configuration, validation, hot reload
//	cmd/mapper  - the command-line tool
//
// Quick start:
//
//	go install github.com/katalvlaran/lvmapper/cmd/mapper@latest
//	mapper build --input points.csv --output graph.json
package lvmapper
