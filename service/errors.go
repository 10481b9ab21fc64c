package service

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnspecifiedID      = status.Error(codes.InvalidArgument, "No id was supplied")
	ErrEmptyValueSupplied = status.Error(codes.InvalidArgument, "Empty value supplied")

	ErrUserDoesNotExist        = status.Error(codes.NotFound, "Specified user does not exist")
	ErrChannelDoesNotExist     = status.Error(codes.NotFound, "Specified channel does not exist")
	ErrRoleDoesNotExist        = status.Error(codes.NotFound, "Specified role does not exist")
	ErrAssociationDoesNotExist = status.Error(codes.NotFound, "Specified channel role assignment does not exist")
)
