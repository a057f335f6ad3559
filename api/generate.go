// Package apipb holds the protobuf messages and gRPC services of didpay.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative payment.proto admin.proto
package apipb
