// Package export turns a Mapper result into a renderer-friendly document of
// nodes, links and run metadata, and encodes it as JSON or YAML.
//
// Node IDs and link endpoints match core.Graph; every node additionally
// carries the centroid of its members in the original space, the majority
// label and label histogram (when the cloud is labelled) and the index of
// its connected component.
package export
