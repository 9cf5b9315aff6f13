// Package model defines the shared data types passed between the
// export pipeline stages and the output writer.
package model
