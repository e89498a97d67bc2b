package ledger

// issuedEventName is the event the registry emits on every successful
// issuance. The token id is recovered from it by name, never by log
// position.
const issuedEventName = "CertificateIssued"

// registryABI describes the certificate registry contract surface consumed
// by this application.
const registryABI = `[
  {
    "type": "function",
    "name": "issueCertificate",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "to", "type": "address"},
      {"name": "certHash", "type": "bytes32"},
      {"name": "metadataURI", "type": "string"}
    ],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "type": "function",
    "name": "verifyCertificate",
    "stateMutability": "view",
    "inputs": [{"name": "certHash", "type": "bytes32"}],
    "outputs": [
      {"name": "valid", "type": "bool"},
      {"name": "tokenId", "type": "uint256"}
    ]
  },
  {
    "type": "function",
    "name": "getCertificateHash",
    "stateMutability": "view",
    "inputs": [{"name": "tokenId", "type": "uint256"}],
    "outputs": [{"name": "", "type": "bytes32"}]
  },
  {
    "type": "function",
    "name": "tokenURI",
    "stateMutability": "view",
    "inputs": [{"name": "tokenId", "type": "uint256"}],
    "outputs": [{"name": "", "type": "string"}]
  },
  {
    "type": "function",
    "name": "totalCertificates",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "type": "function",
    "name": "name",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "string"}]
  },
  {
    "type": "function",
    "name": "symbol",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "string"}]
  },
  {
    "type": "function",
    "name": "owner",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "address"}]
  },
  {
    "type": "function",
    "name": "ownerOf",
    "stateMutability": "view",
    "inputs": [{"name": "tokenId", "type": "uint256"}],
    "outputs": [{"name": "", "type": "address"}]
  },
  {
    "type": "event",
    "name": "CertificateIssued",
    "anonymous": false,
    "inputs": [
      {"name": "tokenId", "type": "uint256", "indexed": true},
      {"name": "certHash", "type": "bytes32", "indexed": true},
      {"name": "to", "type": "address", "indexed": true},
      {"name": "metadataURI", "type": "string", "indexed": false}
    ]
  }
]`
