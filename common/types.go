package common

type LocalMsgType uint32

func (lt LocalMsgType) Type() LocalMsgType {
	return lt & 0xff00
}

func (lt LocalMsgType) SubType() LocalMsgType {
	return lt & 0x00ff
}

// |--type--|-subtype-|
// 0000 0000 0000 0000
const (
	LocalNoUseType        LocalMsgType = 0
	LocalBoostMsg         LocalMsgType = 1 << 8
	LocalBoostMsg_Round   LocalMsgType = LocalBoostMsg | 1
	LocalBoostMsg_Final   LocalMsgType = LocalBoostMsg | 2
	LocalBoostMsg_Failure LocalMsgType = LocalBoostMsg | 3
	LocalDataMsg          LocalMsgType = 2 << 8
	LocalDataMsg_Loaded   LocalMsgType = LocalDataMsg | 1
)

var LocalMsgTypeName = map[LocalMsgType]string{
	LocalBoostMsg_Round:   "BoostRound",
	LocalBoostMsg_Final:   "BoostFinal",
	LocalBoostMsg_Failure: "BoostFailure",
	LocalDataMsg_Loaded:   "DataLoaded",
}

func (lt LocalMsgType) String() string {
	if name, ok := LocalMsgTypeName[lt]; ok {
		return name
	}
	return "Unknown"
}
