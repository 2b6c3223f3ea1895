package empty

type Plain struct{}
