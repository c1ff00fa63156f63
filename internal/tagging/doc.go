// Package tagging reads tempo and musical key markers out of sample file
// names and renders them as a bracketed suffix such as " [120bpm Cm]".
//
// Only the name is inspected; audio content is never decoded.
package tagging
