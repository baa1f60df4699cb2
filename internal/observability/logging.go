package observability

// MaskCPF masks a national ID for logging. Raw CPFs must never reach
// log output or finding evidence.
func MaskCPF(cpf string) string {
	if len(cpf) != 11 {
		return "***.***.***-**"
	}
	return cpf[:3] + ".***" + "." + cpf[6:9] + "-**"
}

// MaskVoterKey shortens a hashed voter key for logging. The full digest
// stays out of logs so entries cannot be joined back to vote records.
func MaskVoterKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8] + "..."
}
