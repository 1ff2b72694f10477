package http

import "bank-api/internal/profile"

type whoAmIResp struct {
	FirstName string   `json:"firstName" example:"Alice"`
	LastName  string   `json:"lastName" example:"Doe"`
	Roles     []string `json:"roles" example:"ROLE_customer,SCOPE_accounts:list"`
}

func (h *handler) newWhoAmIResp(o profile.WhoAmIOutput) whoAmIResp {
	roles := o.Authorities
	if roles == nil {
		roles = []string{}
	}
	return whoAmIResp{
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Roles:     roles,
	}
}
