package permissions

import (
	"fmt"

	countdownv1 "github.com/ark-network/countdown/api-spec/countdown/v1"
	grpchealth "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	EntityGame   = "game"
	EntityAdmin  = "admin"
	EntityHealth = "health"
)

// Op is an action on an entity that a method requires.
type Op struct {
	Entity string
	Action string
}

// Whitelist returns the list of all methods that can be called without
// authentication, with the relative entity and action.
func Whitelist() map[string][]Op {
	return map[string][]Op{
		fmt.Sprintf("/%s/GetInfo", countdownv1.CountdownService_ServiceDesc.ServiceName): {{
			Entity: EntityGame,
			Action: "read",
		}},
		fmt.Sprintf("/%s/GetRound", countdownv1.CountdownService_ServiceDesc.ServiceName): {{
			Entity: EntityGame,
			Action: "read",
		}},
		fmt.Sprintf("/%s/GetBalance", countdownv1.CountdownService_ServiceDesc.ServiceName): {{
			Entity: EntityGame,
			Action: "read",
		}},
		fmt.Sprintf("/%s/ListEvents", countdownv1.CountdownService_ServiceDesc.ServiceName): {{
			Entity: EntityGame,
			Action: "read",
		}},
		fmt.Sprintf("/%s/SubscribeEvents", countdownv1.CountdownService_ServiceDesc.ServiceName): {{
			Entity: EntityGame,
			Action: "read",
		}},
		fmt.Sprintf("/%s/Check", grpchealth.Health_ServiceDesc.ServiceName): {{
			Entity: EntityHealth,
			Action: "read",
		}},
		fmt.Sprintf("/%s/Watch", grpchealth.Health_ServiceDesc.ServiceName): {{
			Entity: EntityHealth,
			Action: "read",
		}},
	}
}

// AllPermissionsByMethod returns a mapping of the RPC server calls that
// require a signed caller to the permissions they require.
func AllPermissionsByMethod() map[string][]Op {
	return map[string][]Op{
		fmt.Sprintf("/%s/Participate", countdownv1.CountdownService_ServiceDesc.ServiceName): {{
			Entity: EntityGame,
			Action: "write",
		}},
		fmt.Sprintf("/%s/ClaimReward", countdownv1.CountdownService_ServiceDesc.ServiceName): {{
			Entity: EntityGame,
			Action: "write",
		}},
		fmt.Sprintf("/%s/SetEndDelay", countdownv1.AdminService_ServiceDesc.ServiceName): {{
			Entity: EntityAdmin,
			Action: "write",
		}},
		fmt.Sprintf("/%s/SetCoolDownDuration", countdownv1.AdminService_ServiceDesc.ServiceName): {{
			Entity: EntityAdmin,
			Action: "write",
		}},
		fmt.Sprintf("/%s/SetStakeAmount", countdownv1.AdminService_ServiceDesc.ServiceName): {{
			Entity: EntityAdmin,
			Action: "write",
		}},
		fmt.Sprintf("/%s/SetTreasury", countdownv1.AdminService_ServiceDesc.ServiceName): {{
			Entity: EntityAdmin,
			Action: "write",
		}},
		fmt.Sprintf("/%s/Ban", countdownv1.AdminService_ServiceDesc.ServiceName): {{
			Entity: EntityAdmin,
			Action: "write",
		}},
		fmt.Sprintf("/%s/Unban", countdownv1.AdminService_ServiceDesc.ServiceName): {{
			Entity: EntityAdmin,
			Action: "write",
		}},
		fmt.Sprintf("/%s/ListBlacklisted", countdownv1.AdminService_ServiceDesc.ServiceName): {{
			Entity: EntityAdmin,
			Action: "read",
		}},
	}
}
