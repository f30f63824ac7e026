package grpc

// proto.go defines the gRPC server interface derived from
// covergrid/insurance/v1/insurance.proto. This file serves as a stand-in for
// buf-generated code; once `buf generate` is run, replace it with the import
// from the generated package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InsuranceServiceServer is the server API for InsuranceService.
type InsuranceServiceServer interface {
	AssessRisk(context.Context, *AssessRiskRequest) (*AssessRiskResponse, error)
	IssuePolicy(context.Context, *IssuePolicyRequest) (*IssuePolicyResponse, error)
	CancelPolicy(context.Context, *CancelPolicyRequest) (*CancelPolicyResponse, error)
	GetPolicy(context.Context, *GetPolicyRequest) (*GetPolicyResponse, error)
	ListPolicies(context.Context, *ListPoliciesRequest) (*ListPoliciesResponse, error)
	SubmitClaim(context.Context, *SubmitClaimRequest) (*SubmitClaimResponse, error)
	ReviewClaim(context.Context, *ReviewClaimRequest) (*ReviewClaimResponse, error)
	GetClaim(context.Context, *GetClaimRequest) (*GetClaimResponse, error)
	ListClaims(context.Context, *ListClaimsRequest) (*ListClaimsResponse, error)
	mustEmbedUnimplementedInsuranceServiceServer()
}

// UnimplementedInsuranceServiceServer provides forward-compatible default implementations.
type UnimplementedInsuranceServiceServer struct{}

func (UnimplementedInsuranceServiceServer) AssessRisk(context.Context, *AssessRiskRequest) (*AssessRiskResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessRisk not implemented")
}
func (UnimplementedInsuranceServiceServer) IssuePolicy(context.Context, *IssuePolicyRequest) (*IssuePolicyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IssuePolicy not implemented")
}
func (UnimplementedInsuranceServiceServer) CancelPolicy(context.Context, *CancelPolicyRequest) (*CancelPolicyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelPolicy not implemented")
}
func (UnimplementedInsuranceServiceServer) GetPolicy(context.Context, *GetPolicyRequest) (*GetPolicyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPolicy not implemented")
}
func (UnimplementedInsuranceServiceServer) ListPolicies(context.Context, *ListPoliciesRequest) (*ListPoliciesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPolicies not implemented")
}
func (UnimplementedInsuranceServiceServer) SubmitClaim(context.Context, *SubmitClaimRequest) (*SubmitClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitClaim not implemented")
}
func (UnimplementedInsuranceServiceServer) ReviewClaim(context.Context, *ReviewClaimRequest) (*ReviewClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReviewClaim not implemented")
}
func (UnimplementedInsuranceServiceServer) GetClaim(context.Context, *GetClaimRequest) (*GetClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClaim not implemented")
}
func (UnimplementedInsuranceServiceServer) ListClaims(context.Context, *ListClaimsRequest) (*ListClaimsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClaims not implemented")
}
func (UnimplementedInsuranceServiceServer) mustEmbedUnimplementedInsuranceServiceServer() {}

// RegisterInsuranceServiceServer registers the InsuranceServiceServer with the gRPC server.
func RegisterInsuranceServiceServer(s *grpclib.Server, srv InsuranceServiceServer) {
	s.RegisterService(&_InsuranceService_serviceDesc, srv)
}

var _InsuranceService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "covergrid.insurance.v1.InsuranceService",
	HandlerType: (*InsuranceServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AssessRisk", Handler: _InsuranceService_AssessRisk_Handler},
		{MethodName: "IssuePolicy", Handler: _InsuranceService_IssuePolicy_Handler},
		{MethodName: "CancelPolicy", Handler: _InsuranceService_CancelPolicy_Handler},
		{MethodName: "GetPolicy", Handler: _InsuranceService_GetPolicy_Handler},
		{MethodName: "ListPolicies", Handler: _InsuranceService_ListPolicies_Handler},
		{MethodName: "SubmitClaim", Handler: _InsuranceService_SubmitClaim_Handler},
		{MethodName: "ReviewClaim", Handler: _InsuranceService_ReviewClaim_Handler},
		{MethodName: "GetClaim", Handler: _InsuranceService_GetClaim_Handler},
		{MethodName: "ListClaims", Handler: _InsuranceService_ListClaims_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _InsuranceService_AssessRisk_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(AssessRiskRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).AssessRisk(ctx, req)
}

func _InsuranceService_IssuePolicy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(IssuePolicyRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).IssuePolicy(ctx, req)
}

func _InsuranceService_CancelPolicy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(CancelPolicyRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).CancelPolicy(ctx, req)
}

func _InsuranceService_GetPolicy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetPolicyRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).GetPolicy(ctx, req)
}

func _InsuranceService_ListPolicies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ListPoliciesRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).ListPolicies(ctx, req)
}

func _InsuranceService_SubmitClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(SubmitClaimRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).SubmitClaim(ctx, req)
}

func _InsuranceService_ReviewClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ReviewClaimRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).ReviewClaim(ctx, req)
}

func _InsuranceService_GetClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetClaimRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).GetClaim(ctx, req)
}

func _InsuranceService_ListClaims_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ListClaimsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(InsuranceServiceServer).ListClaims(ctx, req)
}
