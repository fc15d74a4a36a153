package kafka

// Embedded zone database so zone lookups do not depend on the host.
import _ "time/tzdata"
